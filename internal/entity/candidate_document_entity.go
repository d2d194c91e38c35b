package entity

import (
	"time"

	"github.com/google/uuid"
)

// CandidateDocument is an uploaded document with its extracted text.
// Documents without text are skipped by the explanation generator.
type CandidateDocument struct {
	Id            uuid.UUID
	CandidateId   uuid.UUID
	ExtractedText string
	CreatedAt     time.Time
}
