package review

import (
	"time"

	"github.com/google/uuid"
)

const NominationTypeGeneral = "GENERAL"

// ReferenceNomination rows are append-only; repeated nominations of the same
// nominee are kept as distinct rows.
type ReferenceNomination struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CycleID       uuid.UUID `gorm:"type:uuid;not null;index;column:cycle_id" json:"cycle_id"`
	NominatorID   uuid.UUID `gorm:"type:uuid;not null;index;column:nominator_id" json:"nominator_id"`
	NomineeID     uuid.UUID `gorm:"type:uuid;not null;index;column:nominee_id" json:"nominee_id"`
	Type          string    `gorm:"not null;column:type" json:"type"`
	Justification string    `gorm:"type:text;column:justification" json:"justification"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ReferenceNomination) TableName() string { return "reference_nomination" }
