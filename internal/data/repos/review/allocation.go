package review

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

type AllocationRepo interface {
	Get(ctx context.Context, tx *gorm.DB, collaboratorID, projectID uuid.UUID) (*types.Allocation, error)
	// CreateIfAbsent is first-write-wins: once a (collaborator, project)
	// allocation exists its dates are never touched again, so a later
	// import of the same pairing cannot silently shorten or lengthen it.
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, collaboratorID, projectID uuid.UUID, entry, exit time.Time) (*types.Allocation, bool, error)
}

type allocationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAllocationRepo(db *gorm.DB, baseLog *logger.Logger) AllocationRepo {
	return &allocationRepo{db: db, log: baseLog.With("repo", "AllocationRepo")}
}

func (ar *allocationRepo) Get(ctx context.Context, tx *gorm.DB, collaboratorID, projectID uuid.UUID) (*types.Allocation, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var result types.Allocation
	err := transaction.WithContext(ctx).
		Where("collaborator_id = ? AND project_id = ?", collaboratorID, projectID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (ar *allocationRepo) CreateIfAbsent(ctx context.Context, tx *gorm.DB, collaboratorID, projectID uuid.UUID, entry, exit time.Time) (*types.Allocation, bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	existing, err := ar.Get(ctx, transaction, collaboratorID, projectID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	created := &types.Allocation{
		ID:             uuid.New(),
		CollaboratorID: collaboratorID,
		ProjectID:      projectID,
		EntryDate:      entry,
		ExitDate:       exit,
	}
	if err := transaction.WithContext(ctx).Create(created).Error; err != nil {
		return nil, false, err
	}
	return created, true, nil
}
