package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

// EqualizationRepo only reads: committee scores are written by the
// equalization flow, not by this service.
type EqualizationRepo interface {
	ListByCycle(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID) ([]*types.EqualizationScore, error)
	GetByCycleAndCollaborator(ctx context.Context, tx *gorm.DB, cycleID, collaboratorID uuid.UUID) (*types.EqualizationScore, error)
}

type equalizationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEqualizationRepo(db *gorm.DB, baseLog *logger.Logger) EqualizationRepo {
	return &equalizationRepo{db: db, log: baseLog.With("repo", "EqualizationRepo")}
}

func (er *equalizationRepo) ListByCycle(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID) ([]*types.EqualizationScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var results []*types.EqualizationScore
	if err := transaction.WithContext(ctx).
		Where("cycle_id = ?", cycleID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *equalizationRepo) GetByCycleAndCollaborator(ctx context.Context, tx *gorm.DB, cycleID, collaboratorID uuid.UUID) (*types.EqualizationScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var result types.EqualizationScore
	err := transaction.WithContext(ctx).
		Where("cycle_id = ? AND collaborator_id = ?", cycleID, collaboratorID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
