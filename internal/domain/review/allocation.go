package review

import (
	"time"

	"github.com/google/uuid"
)

// Allocation dates are first-write-wins for a (collaborator, project) pair;
// later imports never shorten or lengthen an existing allocation.
type Allocation struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CollaboratorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_allocation_pair;column:collaborator_id" json:"collaborator_id"`
	ProjectID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_allocation_pair;column:project_id" json:"project_id"`
	EntryDate      time.Time `gorm:"not null;column:entry_date" json:"entry_date"`
	ExitDate       time.Time `gorm:"not null;column:exit_date" json:"exit_date"`

	Collaborator *Collaborator `gorm:"foreignKey:CollaboratorID;references:ID" json:"collaborator,omitempty"`
	Project      *Project      `gorm:"foreignKey:ProjectID;references:ID" json:"project,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Allocation) TableName() string { return "allocation" }
