package model

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LifecycleState string    `gorm:"type:candidate_lifecycle_state;not null;default:'ACTIVE';index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Candidate) TableName() string {
	return "candidates"
}
