package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type CandidateEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CandidateId    uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(1536)"`
	Generation     int             `gorm:"default:0"` // embedding model generation, multiple rows may coexist
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (CandidateEmbedding) TableName() string {
	return "candidate_embeddings"
}
