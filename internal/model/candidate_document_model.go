package model

import (
	"time"

	"github.com/google/uuid"
)

type CandidateDocument struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CandidateId   uuid.UUID `gorm:"type:uuid;not null;index"`
	ExtractedText *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (CandidateDocument) TableName() string {
	return "candidate_documents"
}
