package review

import (
	"context"
	"testing"
	"time"

	"github.com/evalhub/evalcycle-backend/internal/data/repos/testutil"
)

func TestAllocationRepoCreateIfAbsent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewAllocationRepo(db, testutil.Logger(t))
	ctx := context.Background()

	collab := testutil.SeedCollaborator(t, ctx, tx, "alloc@example.com")
	project := testutil.SeedProject(t, ctx, tx, "Projeto Atlas")

	entry := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	exit := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	first, created, err := repo.CreateIfAbsent(ctx, tx, collab.ID, project.ID, entry, exit)
	if err != nil {
		t.Fatalf("CreateIfAbsent (create): %v", err)
	}
	if !created {
		t.Fatalf("CreateIfAbsent: expected a new allocation")
	}

	// first write wins: later imports cannot move the dates
	second, created, err := repo.CreateIfAbsent(ctx, tx, collab.ID, project.ID,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("CreateIfAbsent (repeat): %v", err)
	}
	if created {
		t.Fatalf("CreateIfAbsent: repeat must not create")
	}
	if second.ID != first.ID || !second.EntryDate.Equal(entry) || !second.ExitDate.Equal(exit) {
		t.Fatalf("CreateIfAbsent: existing allocation was changed: %+v", second)
	}
}
