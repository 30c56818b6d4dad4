package review

import (
	"time"

	"github.com/google/uuid"
)

// PeerAssessmentSummary is the reduction of all 360 rows a single author
// filed about one evaluated collaborator: mean overall score plus
// newline-joined free-text fields.
type PeerAssessmentSummary struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AssessmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:assessment_id" json:"assessment_id"`

	// Rounded to 2 decimals. Zero also stands for "no parseable score in
	// the group", so it cannot be read as "no assessment exists".
	OverallScore float64 `gorm:"not null;column:overall_score" json:"overall_score"`

	Strengths           string `gorm:"type:text;column:strengths" json:"strengths"`
	AreasToImprove      string `gorm:"type:text;column:areas_to_improve" json:"areas_to_improve"`
	WouldWorkAgainNotes string `gorm:"type:text;column:would_work_again_notes" json:"would_work_again_notes"`

	Assessment *Assessment `gorm:"constraint:OnDelete:CASCADE;foreignKey:AssessmentID;references:ID" json:"assessment,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (PeerAssessmentSummary) TableName() string { return "peer_assessment_summary" }
