package review

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

type CycleRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EvaluationCycle, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.EvaluationCycle, error)
	// FindOrCreate has no update path: a cycle's schedule is immutable once
	// created, whatever later imports claim.
	FindOrCreate(ctx context.Context, tx *gorm.DB, cycle *types.EvaluationCycle) (*types.EvaluationCycle, error)
}

type cycleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCycleRepo(db *gorm.DB, baseLog *logger.Logger) CycleRepo {
	return &cycleRepo{db: db, log: baseLog.With("repo", "CycleRepo")}
}

func (cr *cycleRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.EvaluationCycle, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.EvaluationCycle
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *cycleRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.EvaluationCycle, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.EvaluationCycle
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

func (cr *cycleRepo) FindOrCreate(ctx context.Context, tx *gorm.DB, cycle *types.EvaluationCycle) (*types.EvaluationCycle, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	existing, err := cr.GetByName(ctx, transaction, cycle.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if cycle.ID == uuid.Nil {
		cycle.ID = uuid.New()
	}
	if cycle.PhaseDurations == nil {
		cycle.PhaseDurations = datatypes.JSON([]byte("{}"))
	}
	if err := transaction.WithContext(ctx).Create(cycle).Error; err != nil {
		return nil, err
	}
	cr.log.Info("created evaluation cycle", "cycle", cycle.Name,
		"start", cycle.StartDate.Format(time.DateOnly), "end", cycle.EndDate.Format(time.DateOnly))
	return cycle, nil
}
