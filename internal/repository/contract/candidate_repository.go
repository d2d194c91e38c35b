package contract

import (
	"context"

	"talent-search-be/internal/entity"
	"talent-search-be/internal/repository/specification"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate *entity.Candidate) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Candidate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
