package review

import (
	"context"
	"testing"
	"time"

	"github.com/evalhub/evalcycle-backend/internal/data/repos/testutil"
	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
)

func TestCycleRepoFindOrCreate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCycleRepo(db, testutil.Logger(t))
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, tx, &types.EvaluationCycle{
		Name:      "2024.1",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:    types.CycleStatusClosed,
	})
	if err != nil {
		t.Fatalf("FindOrCreate (create): %v", err)
	}

	// a second import claiming different dates must not move the schedule
	second, err := repo.FindOrCreate(ctx, tx, &types.EvaluationCycle{
		Name:      "2024.1",
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Status:    types.CycleStatusInProgress,
	})
	if err != nil {
		t.Fatalf("FindOrCreate (existing): %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("FindOrCreate: same name must return the same cycle")
	}
	if !second.StartDate.Equal(first.StartDate) || second.Status != types.CycleStatusClosed {
		t.Fatalf("FindOrCreate: existing cycle was mutated: %+v", second)
	}
}

func TestCycleRepoGetByNameMissing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCycleRepo(db, testutil.Logger(t))

	got, err := repo.GetByName(context.Background(), tx, "does-not-exist")
	if err != nil {
		t.Fatalf("GetByName (missing): %v", err)
	}
	if got != nil {
		t.Fatalf("GetByName (missing): expected nil, got %+v", got)
	}
}
