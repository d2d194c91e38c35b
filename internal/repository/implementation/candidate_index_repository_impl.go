package implementation

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"talent-search-be/internal/constant"
	"talent-search-be/internal/repository/contract"
)

type CandidateIndexRepositoryImpl struct {
	db *gorm.DB
}

func NewCandidateIndexRepository(db *gorm.DB) contract.CandidateIndexRepository {
	return &CandidateIndexRepositoryImpl{db: db}
}

// NearestByLifecycle returns one row per embedding row, joined against the
// lifecycle filter. Deduplication to the nearest row per candidate happens
// in the retriever, not here.
func (r *CandidateIndexRepositoryImpl) NearestByLifecycle(ctx context.Context, queryVector []float32, state constant.LifecycleState) ([]contract.SemanticMatch, error) {
	queryVec := pgvector.NewVector(queryVector)

	var matches []contract.SemanticMatch
	err := r.db.WithContext(ctx).
		Table("candidate_embeddings").
		Select("candidate_embeddings.candidate_id, (embedding_value <=> ?) AS distance", queryVec).
		Joins("JOIN candidates ON candidates.id = candidate_embeddings.candidate_id").
		Where("candidates.lifecycle_state = ?", string(state)).
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// LexicalRank computes ts_rank against the externally maintained tsvector
// column. Rows with a zero rank are still returned; normalization and
// union with the semantic signal happen in the retriever.
func (r *CandidateIndexRepositoryImpl) LexicalRank(ctx context.Context, queryText string, state constant.LifecycleState) ([]contract.LexicalMatch, error) {
	var matches []contract.LexicalMatch
	err := r.db.WithContext(ctx).
		Table("candidate_search_documents").
		Select("candidate_search_documents.candidate_id, ts_rank(fts, plainto_tsquery('english', ?)) AS raw_rank", queryText).
		Joins("JOIN candidates ON candidates.id = candidate_search_documents.candidate_id").
		Where("candidates.lifecycle_state = ?", string(state)).
		Where("fts IS NOT NULL").
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
