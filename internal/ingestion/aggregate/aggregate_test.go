package aggregate

import (
	"testing"

	"github.com/evalhub/evalcycle-backend/internal/ingestion/sheet"
)

func TestGroupRows(t *testing.T) {
	rows := []sheet.Row{
		{"Email do Avaliado": sheet.NewCell("a@x.com"), "Nota": sheet.NewCell("1")},
		{"Email do Avaliado": sheet.NewCell("b@x.com"), "Nota": sheet.NewCell("2")},
		{"Email do Avaliado": sheet.Absent(), "Nota": sheet.NewCell("3")},
		{"Email do Avaliado": sheet.NewCell("a@x.com"), "Nota": sheet.NewCell("4")},
	}

	groups := GroupRows(rows, func(r sheet.Row) (string, bool) {
		return sheet.ResolveString(r, sheet.HeaderContains("email do avaliado"))
	})

	if len(groups) != 3 {
		t.Fatalf("GroupRows: expected 3 groups, got %d", len(groups))
	}
	if len(groups["a@x.com"]) != 2 {
		t.Fatalf("GroupRows: expected 2 rows for a@x.com, got %d", len(groups["a@x.com"]))
	}
	if len(groups[UnknownKey]) != 1 {
		t.Fatalf("GroupRows: unresolvable row must land under UnknownKey")
	}
	// row order inside a group follows file order
	if got := groups["a@x.com"][0].Get("Nota").String(); got != "1" {
		t.Fatalf("GroupRows: first row of group should be the first file row, got %q", got)
	}
}

func TestMean2(t *testing.T) {
	if got := Mean2(nil); got != 0 {
		t.Fatalf("Mean2(nil) = %v, want 0", got)
	}
	if got := Mean2([]float64{8, 6}); got != 7 {
		t.Fatalf("Mean2(8,6) = %v, want 7", got)
	}
	if got := Mean2([]float64{1, 2, 2}); got != 1.67 {
		t.Fatalf("Mean2(1,2,2) = %v, want 1.67", got)
	}
}

func TestJoinNonEmpty(t *testing.T) {
	got := JoinNonEmpty([]string{"bom", "", "  ", "ótimo"}, "nada")
	if got != "bom\nótimo" {
		t.Fatalf("JoinNonEmpty = %q", got)
	}
	if got := JoinNonEmpty([]string{"", "  "}, "Sem comentários registrados."); got != "Sem comentários registrados." {
		t.Fatalf("JoinNonEmpty fallback = %q", got)
	}
}
