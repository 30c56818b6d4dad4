package review

import (
	"time"

	"github.com/google/uuid"
)

type CycleMembership struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CollaboratorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_membership_pair;column:collaborator_id" json:"collaborator_id"`
	CycleID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_membership_pair;column:cycle_id" json:"cycle_id"`

	Collaborator *Collaborator    `gorm:"foreignKey:CollaboratorID;references:ID" json:"collaborator,omitempty"`
	Cycle        *EvaluationCycle `gorm:"foreignKey:CycleID;references:ID" json:"cycle,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CycleMembership) TableName() string { return "cycle_membership" }
