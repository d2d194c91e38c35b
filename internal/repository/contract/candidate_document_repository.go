package contract

import (
	"context"

	"github.com/google/uuid"

	"talent-search-be/internal/entity"
)

// CandidateDocumentRepository is the document store used for evidence.
type CandidateDocumentRepository interface {
	Create(ctx context.Context, document *entity.CandidateDocument) error
	// DocumentsFor batch-loads documents with non-empty extracted text for
	// the given candidates.
	DocumentsFor(ctx context.Context, candidateIds []uuid.UUID) (map[uuid.UUID][]*entity.CandidateDocument, error)
}
