package contract

import (
	"context"

	"github.com/google/uuid"

	"talent-search-be/internal/constant"
)

// SemanticMatch is one embedding row's distance to the query vector.
// A candidate with several embedding generations yields several rows;
// the retriever keeps the nearest.
type SemanticMatch struct {
	CandidateId uuid.UUID
	Distance    float64 // pgvector cosine distance (0 = identical, 2 = opposite)
}

// LexicalMatch is a candidate's raw full-text rank for the query.
// RawRank is unbounded; the retriever normalizes against the batch maximum.
type LexicalMatch struct {
	CandidateId uuid.UUID
	RawRank     float64
}

// CandidateIndexRepository exposes the two external index lookups the
// retrieval engine depends on. Both respect the lifecycle filter.
type CandidateIndexRepository interface {
	NearestByLifecycle(ctx context.Context, queryVector []float32, state constant.LifecycleState) ([]SemanticMatch, error)
	LexicalRank(ctx context.Context, queryText string, state constant.LifecycleState) ([]LexicalMatch, error)
}
