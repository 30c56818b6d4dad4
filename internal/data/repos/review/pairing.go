package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

type PairingRepo interface {
	Get(ctx context.Context, tx *gorm.DB, aID, bID, cycleID uuid.UUID) (*types.Pairing, error)
	// Upsert is last-write-wins on the ordered (A, B, cycle) triple: a later
	// row in the same import can correct projectID/daysWorkedTogether.
	Upsert(ctx context.Context, tx *gorm.DB, aID, bID, cycleID, projectID uuid.UUID, daysWorkedTogether int) error
}

type pairingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPairingRepo(db *gorm.DB, baseLog *logger.Logger) PairingRepo {
	return &pairingRepo{db: db, log: baseLog.With("repo", "PairingRepo")}
}

func (pr *pairingRepo) Get(ctx context.Context, tx *gorm.DB, aID, bID, cycleID uuid.UUID) (*types.Pairing, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.Pairing
	err := transaction.WithContext(ctx).
		Where("collaborator_a_id = ? AND collaborator_b_id = ? AND cycle_id = ?", aID, bID, cycleID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *pairingRepo) Upsert(ctx context.Context, tx *gorm.DB, aID, bID, cycleID, projectID uuid.UUID, daysWorkedTogether int) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	row := &types.Pairing{
		ID:                 uuid.New(),
		CollaboratorAID:    aID,
		CollaboratorBID:    bID,
		CycleID:            cycleID,
		ProjectID:          projectID,
		DaysWorkedTogether: daysWorkedTogether,
	}
	return transaction.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "collaborator_a_id"},
			{Name: "collaborator_b_id"},
			{Name: "cycle_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"project_id",
			"days_worked_together",
			"updated_at",
		}),
	}).Create(row).Error
}
