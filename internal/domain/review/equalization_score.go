package review

import (
	"time"

	"github.com/google/uuid"
)

// EqualizationScore is the committee-adjusted score per (cycle,
// collaborator). The ingestion pipeline never writes it; the report exporter
// joins against it.
type EqualizationScore struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CycleID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_equalization_pair;column:cycle_id" json:"cycle_id"`
	CollaboratorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_equalization_pair;column:collaborator_id" json:"collaborator_id"`
	FinalScore     float64   `gorm:"not null;column:final_score" json:"final_score"`
	Justification  string    `gorm:"type:text;column:justification" json:"justification"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (EqualizationScore) TableName() string { return "equalization_score" }
