package mapper

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"talent-search-be/internal/entity"
	"talent-search-be/internal/model"
)

type SearchSessionMapper struct{}

func NewSearchSessionMapper() *SearchSessionMapper {
	return &SearchSessionMapper{}
}

func (m *SearchSessionMapper) ToEntity(s *model.SearchSession) *entity.SearchSession {
	if s == nil {
		return nil
	}

	var history []entity.QueryHistoryEntry
	if len(s.QueryHistory) > 0 {
		// Malformed rows degrade to an empty history rather than failing the read.
		_ = json.Unmarshal(s.QueryHistory, &history)
	}
	if history == nil {
		history = []entity.QueryHistoryEntry{}
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.SearchSession{
		Id:             s.Id,
		UserId:         s.UserId,
		QueryHistory:   history,
		CurrentContext: s.CurrentContext,
		Version:        s.Version,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *SearchSessionMapper) ToModel(s *entity.SearchSession) *model.SearchSession {
	if s == nil {
		return nil
	}

	historyJSON, err := json.Marshal(s.QueryHistory)
	if err != nil {
		historyJSON = []byte("[]")
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.SearchSession{
		Id:             s.Id,
		UserId:         s.UserId,
		QueryHistory:   datatypes.JSON(historyJSON),
		CurrentContext: s.CurrentContext,
		Version:        s.Version,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
