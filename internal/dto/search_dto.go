package dto

import (
	"github.com/google/uuid"

	"talent-search-be/internal/constant"
	"talent-search-be/pkg/search/explain"
)

type SearchFilters struct {
	LifecycleState *constant.LifecycleState `json:"lifecycle_state" validate:"omitempty,oneof=ACTIVE ARCHIVE"`
}

type SearchRequest struct {
	Query     string         `json:"query" validate:"required,min=1,max=2000"`
	SessionId *uuid.UUID     `json:"session_id"`
	Filters   *SearchFilters `json:"filters"`
	Limit     *int           `json:"limit"` // nil means default, out-of-range values are clamped
}

type SearchResultItem struct {
	CandidateId   uuid.UUID            `json:"candidate_id"`
	CandidateName *string              `json:"candidate_name"`
	Score         float64              `json:"score"`
	SemanticScore float64              `json:"semantic_score"`
	LexicalScore  float64              `json:"lexical_score"`
	Explanation   *explain.Explanation `json:"explanation"`
}

type SearchResponse struct {
	Results     []SearchResultItem `json:"results"`
	ResultCount int                `json:"result_count"`
	SessionId   uuid.UUID          `json:"session_id"`
	Context     string             `json:"context"` // full refinement trail, oldest query first
}
