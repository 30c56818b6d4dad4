package reporting

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/evalhub/evalcycle-backend/internal/data/repos"
	"github.com/evalhub/evalcycle-backend/internal/data/repos/testutil"
	types "github.com/evalhub/evalcycle-backend/internal/domain/review"
)

func TestBuildCycleReport(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	cycle := testutil.SeedCycle(t, ctx, tx, "report-2024.1")
	ana := testutil.SeedCollaborator(t, ctx, tx, "report-ana@example.com")
	bruno := testutil.SeedCollaborator(t, ctx, tx, "report-bruno@example.com")
	for _, c := range []*types.Collaborator{ana, bruno} {
		m := &types.CycleMembership{ID: uuid.New(), CollaboratorID: c.ID, CycleID: cycle.ID}
		if err := tx.WithContext(ctx).Create(m).Error; err != nil {
			t.Fatalf("seed membership: %v", err)
		}
	}
	testutil.SeedAssessment(t, ctx, tx, cycle.ID, ana.ID, ana.ID, types.AssessmentKindSelf)
	testutil.SeedAssessment(t, ctx, tx, cycle.ID, bruno.ID, ana.ID, types.AssessmentKindPeer)
	testutil.SeedEqualizationScore(t, ctx, tx, cycle.ID, ana.ID, 8.5, "Entrega consistente")

	exporter := NewExporter(tx, testutil.Logger(t), repos.NewSet(tx, testutil.Logger(t)))

	f, name, err := exporter.BuildCycleReport(ctx, cycle.ID)
	if err != nil {
		t.Fatalf("BuildCycleReport: %v", err)
	}
	defer f.Close()

	want := "report_cycle_" + cycle.ID.String() + ".xlsx"
	if name != want {
		t.Fatalf("file name: got %q, want %q", name, want)
	}

	if got, _ := f.GetCellValue(sheetSummary, "B1"); got != "report-2024.1" {
		t.Fatalf("summary cycle name: got %q", got)
	}
	if got, _ := f.GetCellValue(sheetSummary, "B5"); got != "2" {
		t.Fatalf("summary member count: got %q", got)
	}
	if got, _ := f.GetCellValue(sheetSummary, "B6"); got != "2" {
		t.Fatalf("summary assessment count: got %q", got)
	}
	if got, _ := f.GetCellValue(sheetSummary, "B8"); got != "100%" {
		t.Fatalf("summary completion rate: got %q", got)
	}

	// detail rows come back sorted by collaborator name; both were seeded
	// with the same fixture name, so assert on the email column instead
	emails := map[string]bool{}
	for _, row := range []string{"B2", "B3"} {
		v, _ := f.GetCellValue(sheetDetail, row)
		emails[v] = true
	}
	if !emails["report-ana@example.com"] || !emails["report-bruno@example.com"] {
		t.Fatalf("detail emails wrong: %v", emails)
	}

	rows, err := f.GetRows(sheetDetail)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	var found bool
	for _, row := range rows[1:] {
		if len(row) >= 5 && row[1] == "report-ana@example.com" {
			found = true
			if row[3] != "8.5" || row[4] != "Entrega consistente" {
				t.Fatalf("equalization columns wrong: %v", row)
			}
		}
	}
	if !found {
		t.Fatalf("no detail row for scored collaborator")
	}
}

func TestBuildCycleReportUnknownCycle(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	exporter := NewExporter(tx, testutil.Logger(t), repos.NewSet(tx, testutil.Logger(t)))
	if _, _, err := exporter.BuildCycleReport(context.Background(), uuid.New()); err == nil {
		t.Fatalf("BuildCycleReport: expected error for unknown cycle")
	}
}
