package contract

import (
	"context"

	"github.com/google/uuid"

	"talent-search-be/internal/entity"
)

// SearchSessionRepository persists refinement sessions. Update is guarded by
// the entity's Version: a stale write returns a CONFLICT instead of silently
// dropping a concurrently appended entry.
type SearchSessionRepository interface {
	Create(ctx context.Context, session *entity.SearchSession) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.SearchSession, error)
	Update(ctx context.Context, session *entity.SearchSession) error
}
