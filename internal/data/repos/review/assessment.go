package review

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
	"github.com/evalhub/evalcycle-backend/internal/platform/logger"
)

// AssessmentRepo is append-only for assessments: each import run creates a
// fresh record because the imported file is authoritative for that run.
type AssessmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) (*types.Assessment, error)
	CreateSelfCards(ctx context.Context, tx *gorm.DB, cards []*types.SelfAssessmentCard) ([]*types.SelfAssessmentCard, error)
	CreatePeerSummary(ctx context.Context, tx *gorm.DB, summary *types.PeerAssessmentSummary) (*types.PeerAssessmentSummary, error)
	CountByCycle(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID) (total int64, completed int64, err error)
	ListCardsByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) ([]*types.SelfAssessmentCard, error)
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return &assessmentRepo{db: db, log: baseLog.With("repo", "AssessmentRepo")}
}

func (ar *assessmentRepo) Create(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) (*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	if assessment.Status == "" {
		assessment.Status = types.AssessmentStatusCompleted
	}
	if err := transaction.WithContext(ctx).Create(assessment).Error; err != nil {
		return nil, err
	}
	return assessment, nil
}

func (ar *assessmentRepo) CreateSelfCards(ctx context.Context, tx *gorm.DB, cards []*types.SelfAssessmentCard) ([]*types.SelfAssessmentCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(cards) == 0 {
		return []*types.SelfAssessmentCard{}, nil
	}
	for _, card := range cards {
		if card.ID == uuid.Nil {
			card.ID = uuid.New()
		}
	}
	if err := transaction.WithContext(ctx).Create(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (ar *assessmentRepo) CreatePeerSummary(ctx context.Context, tx *gorm.DB, summary *types.PeerAssessmentSummary) (*types.PeerAssessmentSummary, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if summary.ID == uuid.Nil {
		summary.ID = uuid.New()
	}
	if err := transaction.WithContext(ctx).Create(summary).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

func (ar *assessmentRepo) CountByCycle(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID) (int64, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var total int64
	if err := transaction.WithContext(ctx).
		Model(&types.Assessment{}).
		Where("cycle_id = ?", cycleID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var completed int64
	if err := transaction.WithContext(ctx).
		Model(&types.Assessment{}).
		Where("cycle_id = ? AND status = ?", cycleID, types.AssessmentStatusCompleted).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

func (ar *assessmentRepo) ListCardsByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) ([]*types.SelfAssessmentCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.SelfAssessmentCard
	if err := transaction.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
