package sheet

import (
	"strconv"
	"strings"
)

type CellKind int

const (
	CellAbsent CellKind = iota
	CellText
	CellNumber
)

// Cell is a tagged spreadsheet value. Workbook readers hand every present
// cell over as text; numeric classification happens once at load so callers
// can branch on Kind without re-parsing.
type Cell struct {
	Kind CellKind
	Text string
	Num  float64
}

func Absent() Cell { return Cell{Kind: CellAbsent} }

func NewCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellAbsent}
	}
	if f, err := strconv.ParseFloat(normalizeDecimal(trimmed), 64); err == nil {
		return Cell{Kind: CellNumber, Text: trimmed, Num: f}
	}
	return Cell{Kind: CellText, Text: trimmed}
}

func (c Cell) IsAbsent() bool { return c.Kind == CellAbsent }

func (c Cell) String() string {
	if c.Kind == CellAbsent {
		return ""
	}
	return c.Text
}

// Float reports the numeric value of the cell. Text cells are re-parsed so
// "8" typed as text still counts; comma decimals are accepted because the
// source exports use them.
func (c Cell) Float() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Num, true
	case CellText:
		f, err := strconv.ParseFloat(normalizeDecimal(c.Text), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int accepts only whole numbers; "4.5" is not a valid integer score.
func (c Cell) Int() (int, bool) {
	f, ok := c.Float()
	if !ok {
		return 0, false
	}
	i := int(f)
	if float64(i) != f {
		return 0, false
	}
	return i, true
}

func normalizeDecimal(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}
