package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talent-search-be/internal/entity"
	"talent-search-be/internal/mapper"
	"talent-search-be/internal/model"
	"talent-search-be/internal/repository/contract"
)

type CandidateDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CandidateDocumentMapper
}

func NewCandidateDocumentRepository(db *gorm.DB) contract.CandidateDocumentRepository {
	return &CandidateDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewCandidateDocumentMapper(),
	}
}

func (r *CandidateDocumentRepositoryImpl) Create(ctx context.Context, document *entity.CandidateDocument) error {
	text := document.ExtractedText
	m := &model.CandidateDocument{
		Id:          document.Id,
		CandidateId: document.CandidateId,
		CreatedAt:   document.CreatedAt,
	}
	if text != "" {
		m.ExtractedText = &text
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*document = *r.mapper.ToEntity(m)
	return nil
}

func (r *CandidateDocumentRepositoryImpl) DocumentsFor(ctx context.Context, candidateIds []uuid.UUID) (map[uuid.UUID][]*entity.CandidateDocument, error) {
	result := make(map[uuid.UUID][]*entity.CandidateDocument, len(candidateIds))
	if len(candidateIds) == 0 {
		return result, nil
	}

	var models []*model.CandidateDocument
	err := r.db.WithContext(ctx).
		Where("candidate_id IN ?", candidateIds).
		Where("extracted_text IS NOT NULL AND extracted_text <> ''").
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	for _, m := range models {
		e := r.mapper.ToEntity(m)
		result[e.CandidateId] = append(result[e.CandidateId], e)
	}
	return result, nil
}
