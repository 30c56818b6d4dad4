package sheet

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildSheet(t *testing.T, name string, rows [][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", name)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	return f
}

func TestExtractRows(t *testing.T) {
	f := buildSheet(t, "Perfil", [][]interface{}{
		{"Email", "Nome", "Unidade"},
		{"ana@example.com", "Ana Souza", "Produto"},
		{"", "", ""},
		{"bruno@example.com", "Bruno Lima"},
	})
	defer f.Close()

	rows := ExtractRows(f, "Perfil")
	if len(rows) != 2 {
		t.Fatalf("ExtractRows: expected 2 rows (blank row dropped), got %d", len(rows))
	}
	if got := rows[0].Get("Email").String(); got != "ana@example.com" {
		t.Fatalf("ExtractRows: row 0 email = %q", got)
	}
	// short row leaves the trailing cell absent
	if c := rows[1].Get("Unidade"); !c.IsAbsent() {
		t.Fatalf("ExtractRows: expected absent unit on short row, got %+v", c)
	}
}

func TestExtractRowsMissingSheet(t *testing.T) {
	f := buildSheet(t, "Perfil", [][]interface{}{{"Email"}, {"a@b.com"}})
	defer f.Close()

	if rows := ExtractRows(f, "Autoavaliação"); rows != nil {
		t.Fatalf("ExtractRows(missing sheet): expected nil, got %d rows", len(rows))
	}
	if rows := ExtractRows(nil, "Perfil"); rows != nil {
		t.Fatalf("ExtractRows(nil file): expected nil")
	}
}

func TestExtractRowsHeaderOnly(t *testing.T) {
	f := buildSheet(t, "Perfil", [][]interface{}{{"Email", "Nome"}})
	defer f.Close()

	if rows := ExtractRows(f, "Perfil"); rows != nil {
		t.Fatalf("ExtractRows(header only): expected nil, got %d rows", len(rows))
	}
}
