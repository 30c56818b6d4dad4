package review

import (
	"context"
	"testing"

	"github.com/evalhub/evalcycle-backend/internal/data/repos/testutil"
	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
)

func TestAssessmentRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewAssessmentRepo(db, testutil.Logger(t))
	ctx := context.Background()

	collab := testutil.SeedCollaborator(t, ctx, tx, "assess@example.com")
	cycle := testutil.SeedCycle(t, ctx, tx, "assessment-2024.1")

	assessment, err := repo.Create(ctx, tx, &types.Assessment{
		CycleID:   cycle.ID,
		SubjectID: collab.ID,
		AuthorID:  collab.ID,
		Kind:      types.AssessmentKindSelf,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if assessment.Status != types.AssessmentStatusCompleted {
		t.Fatalf("Create: expected completed default, got %q", assessment.Status)
	}

	cards, err := repo.CreateSelfCards(ctx, tx, []*types.SelfAssessmentCard{
		{AssessmentID: assessment.ID, CriterionName: "Sentimento de Dono", Score: 4},
		{AssessmentID: assessment.ID, CriterionName: "Team Player", Score: 5, Justification: "Sempre disponível"},
	})
	if err != nil {
		t.Fatalf("CreateSelfCards: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("CreateSelfCards: expected 2 cards, got %d", len(cards))
	}

	listed, err := repo.ListCardsByAssessment(ctx, tx, assessment.ID)
	if err != nil {
		t.Fatalf("ListCardsByAssessment: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("ListCardsByAssessment: expected 2 cards, got %d", len(listed))
	}

	// a second run appends rather than replacing
	if _, err := repo.Create(ctx, tx, &types.Assessment{
		CycleID:   cycle.ID,
		SubjectID: collab.ID,
		AuthorID:  collab.ID,
		Kind:      types.AssessmentKindSelf,
	}); err != nil {
		t.Fatalf("Create (repeat): %v", err)
	}

	total, completed, err := repo.CountByCycle(ctx, tx, cycle.ID)
	if err != nil {
		t.Fatalf("CountByCycle: %v", err)
	}
	if total != 2 || completed != 2 {
		t.Fatalf("CountByCycle: got total=%d completed=%d", total, completed)
	}
}
