package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"talent-search-be/internal/entity"
	"talent-search-be/internal/repository/contract"
	"talent-search-be/pkg/apperror"
)

// Manager accumulates a user's refinement trail across a search
// conversation. Sessions only ever grow: history entries are appended, never
// edited, reordered or removed, and the derived context is recomputed from
// the full history on every append. Session expiry is owned by the store.
type Manager struct {
	sessions contract.SearchSessionRepository
}

func NewManager(sessions contract.SearchSessionRepository) *Manager {
	return &Manager{sessions: sessions}
}

// Create opens a session with its first query.
func (m *Manager) Create(ctx context.Context, userId uuid.UUID, query string, filters *entity.QueryHistoryFilters) (*entity.SearchSession, error) {
	entry := entity.QueryHistoryEntry{
		Query:     query,
		Filters:   filters,
		Timestamp: time.Now().UTC(),
	}

	session := &entity.SearchSession{
		Id:             uuid.New(),
		UserId:         userId,
		QueryHistory:   []entity.QueryHistoryEntry{entry},
		CurrentContext: BuildQueryContext([]entity.QueryHistoryEntry{entry}),
		Version:        1,
		CreatedAt:      time.Now().UTC(),
	}

	if err := m.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get loads a session by id.
func (m *Manager) Get(ctx context.Context, id uuid.UUID) (*entity.SearchSession, error) {
	session, err := m.sessions.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("Search session not found.")
	}
	return session, nil
}

// Append records a refinement at the end of the session's history and
// recomputes the context over the entire updated history. The write happens
// only after folding succeeds; the repository's version guard turns a lost
// concurrent append into a CONFLICT.
func (m *Manager) Append(ctx context.Context, id uuid.UUID, query string, filters *entity.QueryHistoryFilters) (*entity.SearchSession, error) {
	session, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := entity.QueryHistoryEntry{
		Query:     query,
		Filters:   filters,
		Timestamp: time.Now().UTC(),
	}

	session.QueryHistory = append(session.QueryHistory, entry)
	session.CurrentContext = BuildQueryContext(session.QueryHistory)

	if err := m.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// BuildCombinedQuery folds a session's history into the effective search
// string fed to retrieval: queries in reverse chronological order, space
// separated, newest first.
func BuildCombinedQuery(history []entity.QueryHistoryEntry) string {
	if len(history) == 0 {
		return ""
	}
	if len(history) == 1 {
		return history[0].Query
	}

	queries := make([]string, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		queries = append(queries, history[i].Query)
	}
	return strings.Join(queries, " ")
}

// BuildQueryContext folds history into the human-readable trail: queries in
// chronological order joined with " → ".
func BuildQueryContext(history []entity.QueryHistoryEntry) string {
	if len(history) == 0 {
		return ""
	}
	if len(history) == 1 {
		return history[0].Query
	}

	queries := make([]string, len(history))
	for i, h := range history {
		queries[i] = h.Query
	}
	return strings.Join(queries, " → ")
}
