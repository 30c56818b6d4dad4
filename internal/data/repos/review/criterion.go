package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

// CriterionRepo is a read-only lookup during ingestion; seeding happens once
// through the criteria package.
type CriterionRepo interface {
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Criterion, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Criterion, error)
}

type criterionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCriterionRepo(db *gorm.DB, baseLog *logger.Logger) CriterionRepo {
	return &criterionRepo{db: db, log: baseLog.With("repo", "CriterionRepo")}
}

func (cr *criterionRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Criterion, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Criterion
	err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *criterionRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Criterion, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Criterion
	if err := transaction.WithContext(ctx).
		Order("pillar, name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
