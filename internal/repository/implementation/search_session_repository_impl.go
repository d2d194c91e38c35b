package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talent-search-be/internal/entity"
	"talent-search-be/internal/mapper"
	"talent-search-be/internal/model"
	"talent-search-be/internal/repository/contract"
	"talent-search-be/pkg/apperror"
)

type SearchSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SearchSessionMapper
}

func NewSearchSessionRepository(db *gorm.DB) contract.SearchSessionRepository {
	return &SearchSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSearchSessionMapper(),
	}
}

func (r *SearchSessionRepositoryImpl) Create(ctx context.Context, session *entity.SearchSession) error {
	m := r.mapper.ToModel(session)
	if m.Version == 0 {
		m.Version = 1
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *SearchSessionRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.SearchSession, error) {
	var m model.SearchSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// Update persists the appended history with an optimistic version guard.
// A stale version means another refinement landed first; the caller gets a
// CONFLICT instead of silently losing that entry.
func (r *SearchSessionRepositoryImpl) Update(ctx context.Context, session *entity.SearchSession) error {
	m := r.mapper.ToModel(session)

	res := r.db.WithContext(ctx).
		Model(&model.SearchSession{}).
		Where("id = ? AND version = ?", m.Id, session.Version).
		Updates(map[string]interface{}{
			"query_history":   m.QueryHistory,
			"current_context": m.CurrentContext,
			"version":         session.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.Conflict("Search session was modified concurrently.")
	}

	session.Version++
	return nil
}
