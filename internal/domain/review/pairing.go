package review

import (
	"time"

	"github.com/google/uuid"
)

// Pairing records that A worked with B on a project within a cycle. The
// triple is order-sensitive: A is the importing/evaluating collaborator, B
// the evaluated one, so (A, B, cycle) and (B, A, cycle) are distinct rows.
type Pairing struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CollaboratorAID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pairing_triple;column:collaborator_a_id" json:"collaborator_a_id"`
	CollaboratorBID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pairing_triple;column:collaborator_b_id" json:"collaborator_b_id"`
	CycleID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pairing_triple;column:cycle_id" json:"cycle_id"`

	ProjectID          uuid.UUID `gorm:"type:uuid;not null;column:project_id" json:"project_id"`
	DaysWorkedTogether int       `gorm:"not null;column:days_worked_together" json:"days_worked_together"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Pairing) TableName() string { return "pairing" }
