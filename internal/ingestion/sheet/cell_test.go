package sheet

import "testing"

func TestNewCell(t *testing.T) {
	if c := NewCell("   "); !c.IsAbsent() {
		t.Fatalf("NewCell(blank): expected absent, got %+v", c)
	}

	c := NewCell(" 4,5 ")
	if c.Kind != CellNumber {
		t.Fatalf("NewCell(4,5): expected number, got %+v", c)
	}
	if c.Num != 4.5 {
		t.Fatalf("NewCell(4,5): expected 4.5, got %v", c.Num)
	}

	c = NewCell("Projeto Alpha")
	if c.Kind != CellText || c.Text != "Projeto Alpha" {
		t.Fatalf("NewCell(text): unexpected %+v", c)
	}
}

func TestCellFloat(t *testing.T) {
	if v, ok := NewCell("8").Float(); !ok || v != 8 {
		t.Fatalf("Float(8): got %v, %v", v, ok)
	}
	// text cells are re-parsed, comma decimals included
	if v, ok := (Cell{Kind: CellText, Text: "7,25"}).Float(); !ok || v != 7.25 {
		t.Fatalf("Float(7,25 as text): got %v, %v", v, ok)
	}
	if _, ok := NewCell("oito").Float(); ok {
		t.Fatalf("Float(oito): expected failure")
	}
	if _, ok := Absent().Float(); ok {
		t.Fatalf("Float(absent): expected failure")
	}
}

func TestCellInt(t *testing.T) {
	if v, ok := NewCell("4").Int(); !ok || v != 4 {
		t.Fatalf("Int(4): got %v, %v", v, ok)
	}
	if _, ok := NewCell("4.5").Int(); ok {
		t.Fatalf("Int(4.5): fractional score must not pass as integer")
	}
	if _, ok := NewCell("n/a").Int(); ok {
		t.Fatalf("Int(n/a): expected failure")
	}
}
