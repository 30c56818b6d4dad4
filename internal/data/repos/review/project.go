package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

type ProjectRepo interface {
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Project, error)
	// FindOrCreate creates the project on first reference with a default
	// "completed" status (imported pairings reference finished work).
	FindOrCreate(ctx context.Context, tx *gorm.DB, name string) (*types.Project, error)
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return &projectRepo{db: db, log: baseLog.With("repo", "ProjectRepo")}
}

func (pr *projectRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.Project
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

func (pr *projectRepo) FindOrCreate(ctx context.Context, tx *gorm.DB, name string) (*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	existing, err := pr.GetByName(ctx, transaction, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created := &types.Project{
		ID:     uuid.New(),
		Name:   name,
		Status: types.ProjectStatusCompleted,
	}
	if err := transaction.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}
