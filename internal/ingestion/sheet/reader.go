package sheet

import (
	"github.com/xuri/excelize/v2"
)

// Row maps a sheet's literal header text to the cell under it. Headers keep
// their original spelling; matching against them goes through Resolve.
type Row map[string]Cell

// ExtractRows reads the named sheet as a sequence of row records. The first
// row is the header; cells beyond the header width are dropped, and short
// rows simply leave cells absent. A missing or empty sheet yields nil, never
// an error.
func ExtractRows(f *excelize.File, sheetName string) []Row {
	if f == nil {
		return nil
	}
	raw, err := f.GetRows(sheetName)
	if err != nil || len(raw) < 2 {
		return nil
	}

	header := raw[0]
	rows := make([]Row, 0, len(raw)-1)
	for _, line := range raw[1:] {
		row := make(Row, len(header))
		empty := true
		for i, label := range header {
			if label == "" {
				continue
			}
			if i < len(line) {
				c := NewCell(line[i])
				row[label] = c
				if !c.IsAbsent() {
					empty = false
				}
			} else {
				row[label] = Absent()
			}
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// Get returns the cell under the exact header label.
func (r Row) Get(label string) Cell {
	c, ok := r[label]
	if !ok {
		return Absent()
	}
	return c
}
