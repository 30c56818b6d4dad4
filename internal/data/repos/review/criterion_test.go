package review

import (
	"context"
	"testing"

	"github.com/evalhub/evalcycle-backend/internal/data/repos/testutil"
	"github.com/evalhub/evalcycle-backend/internal/ingestion/criteria"
)

func TestCriterionRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCriterionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	// seeding twice must not duplicate the catalogue
	if err := criteria.Seed(ctx, tx); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := criteria.Seed(ctx, tx); err != nil {
		t.Fatalf("Seed (repeat): %v", err)
	}

	listed, err := repo.List(ctx, tx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != len(criteria.Catalogue()) {
		t.Fatalf("List: expected %d criteria, got %d", len(criteria.Catalogue()), len(listed))
	}

	got, err := repo.GetByName(ctx, tx, criteria.WorkOrganization)
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if got == nil || got.Pillar != "BEHAVIOR" {
		t.Fatalf("GetByName: unexpected row %+v", got)
	}

	missing, err := repo.GetByName(ctx, tx, "não existe")
	if err != nil {
		t.Fatalf("GetByName (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByName (missing): expected nil, got %+v", missing)
	}
}
