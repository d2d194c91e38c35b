package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DataRecord struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CandidateId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Fields      datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (DataRecord) TableName() string {
	return "data_records"
}
