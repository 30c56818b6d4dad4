package review

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

// NominationRepo appends reference nominations; repeated rows are kept as
// distinct records, no dedup.
type NominationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, nomination *types.ReferenceNomination) (*types.ReferenceNomination, error)
	CountByCycle(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID) (int64, error)
}

type nominationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNominationRepo(db *gorm.DB, baseLog *logger.Logger) NominationRepo {
	return &nominationRepo{db: db, log: baseLog.With("repo", "NominationRepo")}
}

func (nr *nominationRepo) Create(ctx context.Context, tx *gorm.DB, nomination *types.ReferenceNomination) (*types.ReferenceNomination, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	if nomination.ID == uuid.Nil {
		nomination.ID = uuid.New()
	}
	if nomination.Type == "" {
		nomination.Type = types.NominationTypeGeneral
	}
	if err := transaction.WithContext(ctx).Create(nomination).Error; err != nil {
		return nil, err
	}
	return nomination, nil
}

func (nr *nominationRepo) CountByCycle(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.ReferenceNomination{}).
		Where("cycle_id = ?", cycleID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
