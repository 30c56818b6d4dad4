package review

import (
	"time"

	"github.com/google/uuid"
)

const (
	AssessmentKindSelf = "SELF"
	AssessmentKindPeer = "PEER"

	AssessmentStatusPending   = "PENDING"
	AssessmentStatusCompleted = "COMPLETED"
)

// Assessment rows are append-only: each import run creates a fresh record
// even when one already exists for the same (cycle, subject, author).
type Assessment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CycleID   uuid.UUID `gorm:"type:uuid;not null;index;column:cycle_id" json:"cycle_id"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;index;column:subject_id" json:"subject_id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index;column:author_id" json:"author_id"`
	Kind      string    `gorm:"not null;column:kind" json:"kind"`
	Status    string    `gorm:"not null;column:status" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Assessment) TableName() string { return "assessment" }
