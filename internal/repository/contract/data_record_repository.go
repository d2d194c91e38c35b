package contract

import (
	"context"

	"github.com/google/uuid"

	"talent-search-be/internal/entity"
)

// DataRecordRepository is the entity field store: raw per-candidate field
// maps for explanation grounding and display names for result rows.
type DataRecordRepository interface {
	Create(ctx context.Context, record *entity.DataRecord) error
	// FieldsFor batch-loads the field maps of the given candidates.
	// Candidates without a record are simply absent from the result.
	FieldsFor(ctx context.Context, candidateIds []uuid.UUID) (map[uuid.UUID]map[string]interface{}, error)
	// DisplayNamesFor resolves the fullName field per candidate; nil when
	// the record or the field is missing.
	DisplayNamesFor(ctx context.Context, candidateIds []uuid.UUID) (map[uuid.UUID]*string, error)
}
