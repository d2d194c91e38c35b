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

type CandidateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CandidateMapper
}

func NewCandidateRepository(db *gorm.DB) contract.CandidateRepository {
	return &CandidateRepositoryImpl{
		db:     db,
		mapper: mapper.NewCandidateMapper(),
	}
}

func (r *CandidateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CandidateRepositoryImpl) Create(ctx context.Context, candidate *entity.Candidate) error {
	m := r.mapper.ToModel(candidate)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*candidate = *r.mapper.ToEntity(m)
	return nil
}

func (r *CandidateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Candidate, error) {
	var models []*model.Candidate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Candidate, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *CandidateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Candidate{}).Count(&count).Error
	return count, err
}
