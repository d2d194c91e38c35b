package implementation

import (
	"context"

	"gorm.io/gorm"

	"talent-search-be/internal/entity"
	"talent-search-be/internal/mapper"
	"talent-search-be/internal/model"
	"talent-search-be/internal/repository/contract"
	"talent-search-be/internal/repository/specification"
)

type CandidateEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CandidateEmbeddingMapper
}

func NewCandidateEmbeddingRepository(db *gorm.DB) contract.CandidateEmbeddingRepository {
	return &CandidateEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewCandidateEmbeddingMapper(),
	}
}

func (r *CandidateEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CandidateEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.CandidateEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *CandidateEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.CandidateEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.CandidateEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *CandidateEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.CandidateEmbedding{}).Count(&count).Error
	return count, err
}
