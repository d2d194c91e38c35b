package unitofwork

import (
	"context"

	"talent-search-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CandidateRepository() contract.CandidateRepository
	DataRecordRepository() contract.DataRecordRepository
	CandidateDocumentRepository() contract.CandidateDocumentRepository
	CandidateEmbeddingRepository() contract.CandidateEmbeddingRepository
	CandidateIndexRepository() contract.CandidateIndexRepository
	SearchSessionRepository() contract.SearchSessionRepository
}
