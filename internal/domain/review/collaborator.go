package review

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collaborator is keyed by email. Rows created only because another record
// referenced the email carry placeholder name/unit until an authoritative
// profile row enriches them.
type Collaborator struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	FullName string    `gorm:"not null;column:full_name" json:"full_name"`
	Unit     string    `gorm:"column:unit" json:"unit"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Collaborator) TableName() string { return "collaborator" }
