package entity

import (
	"time"

	"github.com/google/uuid"
)

// DataRecord holds the candidate's structured profile as a free-form field
// map. Values are whatever the jsonb column held: string, float64, bool,
// []interface{}, map[string]interface{} or nil.
type DataRecord struct {
	Id          uuid.UUID
	CandidateId uuid.UUID
	Fields      map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// DisplayName returns the fullName field when present, nil otherwise.
func (r *DataRecord) DisplayName() *string {
	if r == nil || r.Fields == nil {
		return nil
	}
	if v, ok := r.Fields["fullName"].(string); ok && v != "" {
		return &v
	}
	return nil
}
