package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"talent-search-be/internal/repository/contract"
	"talent-search-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when operating on the root handle
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) CandidateRepository() contract.CandidateRepository {
	return implementation.NewCandidateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DataRecordRepository() contract.DataRecordRepository {
	return implementation.NewDataRecordRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CandidateDocumentRepository() contract.CandidateDocumentRepository {
	return implementation.NewCandidateDocumentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CandidateEmbeddingRepository() contract.CandidateEmbeddingRepository {
	return implementation.NewCandidateEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CandidateIndexRepository() contract.CandidateIndexRepository {
	return implementation.NewCandidateIndexRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SearchSessionRepository() contract.SearchSessionRepository {
	return implementation.NewSearchSessionRepository(u.getDB())
}
