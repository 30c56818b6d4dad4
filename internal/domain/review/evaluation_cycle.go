package review

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	CycleStatusInProgress   = "IN_PROGRESS"
	CycleStatusInReview     = "IN_REVIEW"
	CycleStatusEqualization = "EQUALIZATION"
	CycleStatusClosed       = "CLOSED"
)

// EvaluationCycle schedules are immutable once created; imported historical
// cycles get fixed policy dates derived from the year in the cycle name.
type EvaluationCycle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	StartDate time.Time `gorm:"not null;column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"not null;column:end_date" json:"end_date"`
	Status    string    `gorm:"not null;column:status" json:"status"`

	// Days per phase, keyed by phase name.
	PhaseDurations datatypes.JSON `gorm:"column:phase_durations" json:"phase_durations"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (EvaluationCycle) TableName() string { return "evaluation_cycle" }
