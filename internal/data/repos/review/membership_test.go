package review

import (
	"context"
	"testing"

	"github.com/evalhub/evalcycle-backend/internal/data/repos/testutil"
)

func TestMembershipRepoEnsure(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewMembershipRepo(db, testutil.Logger(t))
	ctx := context.Background()

	collab := testutil.SeedCollaborator(t, ctx, tx, "member@example.com")
	other := testutil.SeedCollaborator(t, ctx, tx, "member2@example.com")
	cycle := testutil.SeedCycle(t, ctx, tx, "membership-2024.1")

	for i := 0; i < 3; i++ {
		if err := repo.Ensure(ctx, tx, collab.ID, cycle.ID); err != nil {
			t.Fatalf("Ensure (attempt %d): %v", i, err)
		}
	}
	if err := repo.Ensure(ctx, tx, other.ID, cycle.ID); err != nil {
		t.Fatalf("Ensure (second collaborator): %v", err)
	}

	count, err := repo.CountByCycle(ctx, tx, cycle.ID)
	if err != nil {
		t.Fatalf("CountByCycle: %v", err)
	}
	if count != 2 {
		t.Fatalf("CountByCycle: expected 2 memberships, got %d", count)
	}

	members, err := repo.ListByCycle(ctx, tx, cycle.ID)
	if err != nil {
		t.Fatalf("ListByCycle: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("ListByCycle: expected 2 rows, got %d", len(members))
	}
}
