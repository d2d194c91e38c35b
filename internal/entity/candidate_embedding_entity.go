package entity

import (
	"time"

	"github.com/google/uuid"
)

// CandidateEmbedding is one embedding row for a candidate. A candidate may
// carry several rows (one per model generation); retrieval keeps the nearest.
type CandidateEmbedding struct {
	Id             uuid.UUID
	CandidateId    uuid.UUID
	EmbeddingValue []float32
	Generation     int
	CreatedAt      time.Time
}
