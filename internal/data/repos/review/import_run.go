package review

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

type ImportRunRepo interface {
	Create(ctx context.Context, tx *gorm.DB, run *types.ImportRun) (*types.ImportRun, error)
	Finish(ctx context.Context, tx *gorm.DB, run *types.ImportRun) error
}

type importRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewImportRunRepo(db *gorm.DB, baseLog *logger.Logger) ImportRunRepo {
	return &importRunRepo{db: db, log: baseLog.With("repo", "ImportRunRepo")}
}

func (ir *importRunRepo) Create(ctx context.Context, tx *gorm.DB, run *types.ImportRun) (*types.ImportRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.Status == "" {
		run.Status = types.ImportRunStatusRunning
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	if err := transaction.WithContext(ctx).Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (ir *importRunRepo) Finish(ctx context.Context, tx *gorm.DB, run *types.ImportRun) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	now := time.Now().UTC()
	run.FinishedAt = &now
	return transaction.WithContext(ctx).
		Model(&types.ImportRun{}).
		Where("id = ?", run.ID).
		Updates(map[string]any{
			"status":              run.Status,
			"self_cards_created":  run.SelfCardsCreated,
			"peer_groups_created": run.PeerGroupsCreated,
			"peer_group_failures": run.PeerGroupFailures,
			"nominations_created": run.NominationsCreated,
			"nomination_failures": run.NominationFailures,
			"diagnostics":         run.Diagnostics,
			"finished_at":         run.FinishedAt,
		}).Error
}
