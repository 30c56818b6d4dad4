package review

import (
	"time"

	"github.com/google/uuid"
)

// SelfAssessmentCard is one per-criterion line item of a SELF assessment.
// CriterionName must exist in the criterion catalogue or the card is dropped
// before it gets here.
type SelfAssessmentCard struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AssessmentID  uuid.UUID `gorm:"type:uuid;not null;index;column:assessment_id" json:"assessment_id"`
	CriterionName string    `gorm:"not null;column:criterion_name" json:"criterion_name"`
	Score         int       `gorm:"not null;column:score" json:"score"`
	Justification string    `gorm:"type:text;column:justification" json:"justification"`

	Assessment *Assessment `gorm:"constraint:OnDelete:CASCADE;foreignKey:AssessmentID;references:ID" json:"assessment,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SelfAssessmentCard) TableName() string { return "self_assessment_card" }
