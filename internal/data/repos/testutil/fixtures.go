package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
)

func SeedCollaborator(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.Collaborator {
	tb.Helper()
	c := &types.Collaborator{
		ID:       uuid.New(),
		Email:    email,
		FullName: "Seeded Collaborator",
		Unit:     "Engineering",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed collaborator: %v", err)
	}
	return c
}

func SeedCycle(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.EvaluationCycle {
	tb.Helper()
	c := &types.EvaluationCycle{
		ID:             uuid.New(),
		Name:           name,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:         types.CycleStatusClosed,
		PhaseDurations: datatypes.JSON([]byte(`{"inProgress":30,"review":15,"equalization":15}`)),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed cycle: %v", err)
	}
	return c
}

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Project {
	tb.Helper()
	p := &types.Project{
		ID:     uuid.New(),
		Name:   name,
		Status: types.ProjectStatusCompleted,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

func SeedAssessment(tb testing.TB, ctx context.Context, tx *gorm.DB, cycleID, subjectID, authorID uuid.UUID, kind string) *types.Assessment {
	tb.Helper()
	a := &types.Assessment{
		ID:        uuid.New(),
		CycleID:   cycleID,
		SubjectID: subjectID,
		AuthorID:  authorID,
		Kind:      kind,
		Status:    types.AssessmentStatusCompleted,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed assessment: %v", err)
	}
	return a
}

func SeedEqualizationScore(tb testing.TB, ctx context.Context, tx *gorm.DB, cycleID, collaboratorID uuid.UUID, score float64, justification string) *types.EqualizationScore {
	tb.Helper()
	e := &types.EqualizationScore{
		ID:             uuid.New(),
		CycleID:        cycleID,
		CollaboratorID: collaboratorID,
		FinalScore:     score,
		Justification:  justification,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed equalization score: %v", err)
	}
	return e
}
