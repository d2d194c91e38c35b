package contract

import (
	"context"

	"talent-search-be/internal/entity"
	"talent-search-be/internal/repository/specification"
)

// CandidateEmbeddingRepository writes embedding rows. The read path for
// ranking goes through CandidateIndexRepository instead.
type CandidateEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.CandidateEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.CandidateEmbedding) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
