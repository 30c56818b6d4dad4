package review

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

type MembershipRepo interface {
	// Ensure links a collaborator to a cycle; repeated calls are no-ops.
	Ensure(ctx context.Context, tx *gorm.DB, collaboratorID, cycleID uuid.UUID) error
	CountByCycle(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID) (int64, error)
	ListByCycle(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID) ([]*types.CycleMembership, error)
}

type membershipRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMembershipRepo(db *gorm.DB, baseLog *logger.Logger) MembershipRepo {
	return &membershipRepo{db: db, log: baseLog.With("repo", "MembershipRepo")}
}

func (mr *membershipRepo) Ensure(ctx context.Context, tx *gorm.DB, collaboratorID, cycleID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	row := &types.CycleMembership{
		ID:             uuid.New(),
		CollaboratorID: collaboratorID,
		CycleID:        cycleID,
	}
	return transaction.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collaborator_id"}, {Name: "cycle_id"}},
		DoNothing: true,
	}).Create(row).Error
}

func (mr *membershipRepo) CountByCycle(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CycleMembership{}).
		Where("cycle_id = ?", cycleID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (mr *membershipRepo) ListByCycle(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID) ([]*types.CycleMembership, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var results []*types.CycleMembership
	if err := transaction.WithContext(ctx).
		Where("cycle_id = ?", cycleID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
