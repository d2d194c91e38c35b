package mapper

import (
	"time"

	"github.com/pgvector/pgvector-go"

	"talent-search-be/internal/constant"
	"talent-search-be/internal/entity"
	"talent-search-be/internal/model"
)

type CandidateMapper struct{}

func NewCandidateMapper() *CandidateMapper {
	return &CandidateMapper{}
}

func (m *CandidateMapper) ToEntity(c *model.Candidate) *entity.Candidate {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Candidate{
		Id:             c.Id,
		LifecycleState: constant.LifecycleState(c.LifecycleState),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *CandidateMapper) ToModel(c *entity.Candidate) *model.Candidate {
	if c == nil {
		return nil
	}

	return &model.Candidate{
		Id:             c.Id,
		LifecycleState: string(c.LifecycleState),
		CreatedAt:      c.CreatedAt,
	}
}

type CandidateDocumentMapper struct{}

func NewCandidateDocumentMapper() *CandidateDocumentMapper {
	return &CandidateDocumentMapper{}
}

func (m *CandidateDocumentMapper) ToEntity(d *model.CandidateDocument) *entity.CandidateDocument {
	if d == nil {
		return nil
	}

	text := ""
	if d.ExtractedText != nil {
		text = *d.ExtractedText
	}

	return &entity.CandidateDocument{
		Id:            d.Id,
		CandidateId:   d.CandidateId,
		ExtractedText: text,
		CreatedAt:     d.CreatedAt,
	}
}

type CandidateEmbeddingMapper struct{}

func NewCandidateEmbeddingMapper() *CandidateEmbeddingMapper {
	return &CandidateEmbeddingMapper{}
}

func (m *CandidateEmbeddingMapper) ToEntity(e *model.CandidateEmbedding) *entity.CandidateEmbedding {
	if e == nil {
		return nil
	}

	return &entity.CandidateEmbedding{
		Id:             e.Id,
		CandidateId:    e.CandidateId,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		Generation:     e.Generation,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *CandidateEmbeddingMapper) ToModel(e *entity.CandidateEmbedding) *model.CandidateEmbedding {
	if e == nil {
		return nil
	}

	return &model.CandidateEmbedding{
		Id:             e.Id,
		CandidateId:    e.CandidateId,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		Generation:     e.Generation,
		CreatedAt:      e.CreatedAt,
	}
}
