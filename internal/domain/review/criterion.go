package review

import (
	"time"

	"github.com/google/uuid"
)

const (
	PillarBehavior   = "BEHAVIOR"
	PillarExecution  = "EXECUTION"
	PillarManagement = "MANAGEMENT"
)

// Criterion is a fixed catalogue entry, seeded once and read-only during
// ingestion.
type Criterion struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Pillar string    `gorm:"not null;column:pillar" json:"pillar"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Criterion) TableName() string { return "criterion" }
