package entity

import (
	"time"

	"github.com/google/uuid"

	"talent-search-be/internal/constant"
)

type Candidate struct {
	Id             uuid.UUID
	LifecycleState constant.LifecycleState
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
