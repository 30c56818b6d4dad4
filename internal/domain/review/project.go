package review

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
)

type Project struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Status string    `gorm:"not null;column:status" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Project) TableName() string { return "project" }
