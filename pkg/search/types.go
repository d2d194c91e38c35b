package search

import (
	"github.com/google/uuid"

	"talent-search-be/internal/constant"
	"talent-search-be/pkg/search/explain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Filters narrows the candidate set before ranking. A nil lifecycle state
// falls back to ACTIVE.
type Filters struct {
	LifecycleState *constant.LifecycleState
}

// Resolve returns the effective lifecycle state for this filter.
func (f Filters) Resolve() constant.LifecycleState {
	if f.LifecycleState != nil {
		return *f.LifecycleState
	}
	return constant.DefaultLifecycle
}

// Result is one ranked candidate. Score is always the fused combination of
// the two component scores, each clamped to [0,1] and rounded to 4 decimals.
// Results are ephemeral; nothing here is persisted.
type Result struct {
	CandidateId   uuid.UUID
	CandidateName *string
	Score         float64
	SemanticScore float64
	LexicalScore  float64
	Explanation   *explain.Explanation
}
