package review

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ImportRunStatusRunning = "RUNNING"
	ImportRunStatusDone    = "DONE"
	ImportRunStatusPartial = "PARTIAL"
	ImportRunStatusSkipped = "SKIPPED"
	ImportRunStatusFailed  = "FAILED"
)

// ImportRun persists the per-file outcome of one workbook import so a bulk
// run stays auditable after the process exits.
type ImportRun struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FileName string    `gorm:"not null;column:file_name" json:"file_name"`
	Status   string    `gorm:"not null;column:status" json:"status"`

	SelfCardsCreated   int `gorm:"not null;column:self_cards_created" json:"self_cards_created"`
	PeerGroupsCreated  int `gorm:"not null;column:peer_groups_created" json:"peer_groups_created"`
	PeerGroupFailures  int `gorm:"not null;column:peer_group_failures" json:"peer_group_failures"`
	NominationsCreated int `gorm:"not null;column:nominations_created" json:"nominations_created"`
	NominationFailures int `gorm:"not null;column:nomination_failures" json:"nomination_failures"`

	Diagnostics datatypes.JSON `gorm:"column:diagnostics" json:"diagnostics"`

	StartedAt  time.Time  `gorm:"not null;column:started_at" json:"started_at"`
	FinishedAt *time.Time `gorm:"column:finished_at" json:"finished_at,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ImportRun) TableName() string { return "import_run" }
