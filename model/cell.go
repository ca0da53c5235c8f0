package model

import (
	"encoding/json"
	"strings"
)

// Cell is a single grid cell. A cell either holds non-blank trimmed text
// or is empty; there is no third state. The zero value is an empty cell.
type Cell struct {
	text    string
	present bool
}

// NewCell creates a cell from raw text. The text is trimmed; text that is
// blank after trimming yields an empty cell.
func NewCell(text string) Cell {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Cell{}
	}
	return Cell{text: trimmed, present: true}
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{}
}

// Text returns the cell's trimmed text, or "" for an empty cell.
func (c Cell) Text() string {
	return c.text
}

// IsEmpty reports whether the cell has no value.
func (c Cell) IsEmpty() bool {
	return !c.present
}

// MarshalJSON encodes the cell as a JSON string, or null when empty,
// matching the optional-text wire shape used by upstream decoders.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.present {
		return []byte("null"), nil
	}
	return json.Marshal(c.text)
}

// UnmarshalJSON decodes null or a string, normalizing through NewCell.
func (c *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Cell{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = NewCell(s)
	return nil
}

// Row is an ordered sequence of cells. Order represents left-to-right
// column position.
type Row []Cell

// RowOf builds a row from raw strings. Blank strings become empty cells.
func RowOf(values ...string) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = NewCell(v)
	}
	return row
}

// IsEmpty reports whether every cell in the row is empty. An empty slice
// is an empty row.
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Grid is an ordered sequence of rows representing one sheet. Rows may be
// ragged.
type Grid []Row

// RowCount returns the number of rows in the grid.
func (g Grid) RowCount() int {
	return len(g)
}

// MaxCols returns the length of the widest row.
func (g Grid) MaxCols() int {
	max := 0
	for _, row := range g {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// NonEmptyRowCount returns the number of rows with at least one non-empty
// cell, across the whole grid.
func (g Grid) NonEmptyRowCount() int {
	count := 0
	for _, row := range g {
		if !row.IsEmpty() {
			count++
		}
	}
	return count
}

// Sheet is one named sheet of a workbook, or a whole delimited file.
type Sheet struct {
	Name string
	Rows Grid
}
