package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

type CollaboratorRepo interface {
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Collaborator, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Collaborator, error)
	// UpsertProfile reconciles an authoritative profile row: it creates the
	// collaborator or overwrites fullName/unit on the existing one.
	UpsertProfile(ctx context.Context, tx *gorm.DB, email, fullName, unit string) (*types.Collaborator, error)
	// EnsurePlaceholder creates the collaborator with placeholder identity
	// only when the email is unknown; existing rows are never overwritten
	// with placeholders.
	EnsurePlaceholder(ctx context.Context, tx *gorm.DB, email, fullName, unit string) (*types.Collaborator, error)
}

type collaboratorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCollaboratorRepo(db *gorm.DB, baseLog *logger.Logger) CollaboratorRepo {
	return &collaboratorRepo{db: db, log: baseLog.With("repo", "CollaboratorRepo")}
}

func (cr *collaboratorRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Collaborator, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Collaborator
	err := transaction.WithContext(ctx).
		Where("email = ?", email).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *collaboratorRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Collaborator, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Collaborator
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *collaboratorRepo) UpsertProfile(ctx context.Context, tx *gorm.DB, email, fullName, unit string) (*types.Collaborator, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	existing, err := cr.GetByEmail(ctx, transaction, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := transaction.WithContext(ctx).
			Model(&types.Collaborator{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"full_name": fullName,
				"unit":      unit,
			}).Error; err != nil {
			return nil, err
		}
		existing.FullName = fullName
		existing.Unit = unit
		return existing, nil
	}

	created := &types.Collaborator{
		ID:       uuid.New(),
		Email:    email,
		FullName: fullName,
		Unit:     unit,
	}
	if err := transaction.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (cr *collaboratorRepo) EnsurePlaceholder(ctx context.Context, tx *gorm.DB, email, fullName, unit string) (*types.Collaborator, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	existing, err := cr.GetByEmail(ctx, transaction, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created := &types.Collaborator{
		ID:       uuid.New(),
		Email:    email,
		FullName: fullName,
		Unit:     unit,
	}
	if err := transaction.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	cr.log.Debug("created placeholder collaborator", "collaborator_id", created.ID)
	return created, nil
}
