package entity

import (
	"time"

	"github.com/google/uuid"

	"talent-search-be/internal/constant"
)

// QueryHistoryEntry is one issued query inside a session. History is
// append-only; entries are never edited or reordered.
type QueryHistoryEntry struct {
	Query     string               `json:"query"`
	Filters   *QueryHistoryFilters `json:"filters,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

type QueryHistoryFilters struct {
	LifecycleState *constant.LifecycleState `json:"lifecycleState,omitempty"`
}

// SearchSession accumulates a user's refinement trail. CurrentContext is
// always a pure function of QueryHistory, recomputed on every append.
type SearchSession struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	QueryHistory   []QueryHistoryEntry
	CurrentContext string
	Version        int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
