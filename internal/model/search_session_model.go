package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SearchSession struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"` // owning user, data isolation
	QueryHistory   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CurrentContext string         `gorm:"type:text"`
	Version        int            `gorm:"not null;default:1"` // optimistic lock for concurrent appends
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (SearchSession) TableName() string {
	return "search_sessions"
}
