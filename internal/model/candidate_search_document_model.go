package model

import (
	"time"

	"github.com/google/uuid"
)

// CandidateSearchDocument carries the full-text search vector for a
// candidate. The fts column is maintained by the external indexing pipeline;
// this engine only reads it via ts_rank.
type CandidateSearchDocument struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CandidateId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Content     string    `gorm:"type:text"`
	Fts         string    `gorm:"type:tsvector;index:idx_candidate_search_documents_fts,type:gin"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (CandidateSearchDocument) TableName() string {
	return "candidate_search_documents"
}
