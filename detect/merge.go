package detect

import (
	"strings"

	"github.com/CDdanieldeng/excel-accelerator/model"
)

// MergeColumns collapses one or more header rows into a single ordered
// list of column names.
//
// A single row maps to its trimmed cell texts. Multiple rows are merged
// top to bottom per column, joining the parts with "/": a top heading
// "Sales" spanning sub-columns "Q1" and "Q2" yields "Sales/Q1" and
// "Sales/Q2". Spans are inferred from blank-cell adjacency, since no
// cell-merge metadata reaches this layer. Trailing blank columns are
// trimmed; leading and interior blanks are preserved as empty strings.
func (d *Detector) MergeColumns(headerRows []model.Row) []string {
	if len(headerRows) == 0 {
		return []string{}
	}
	if len(headerRows) == 1 {
		return singleRowColumns(headerRows[0])
	}

	maxCols := 0
	for _, row := range headerRows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	merged := make([]string, 0, maxCols)
	for col := 0; col < maxCols; col++ {
		merged = append(merged, strings.Join(mergeColumn(headerRows, col), "/"))
	}
	return trimTrailingEmpty(merged)
}

// mergeColumn walks one column of the header rows top to bottom and
// collects the name parts it contributes.
func mergeColumn(headerRows []model.Row, col int) []string {
	var parts []string
	havePrior := false

	for rowIdx, row := range headerRows {
		text := cellText(row, col)
		if text == "" {
			continue
		}
		if rowIdx > 0 && cellText(headerRows[rowIdx-1], col) == "" {
			// The cell above is blank. A filled left neighbor plus a
			// prior value for this column marks the horizontal
			// continuation of a merged cell: no new segment.
			if col > 0 && cellText(row, col-1) != "" && havePrior {
				continue
			}
		}
		parts = append(parts, text)
		havePrior = true
	}
	return parts
}

// cellText returns the trimmed text at the given column, treating indices
// past the row's end as empty. Ragged rows are padded, not rejected.
func cellText(row model.Row, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col].Text()
}

func singleRowColumns(row model.Row) []string {
	columns := make([]string, 0, len(row))
	for _, cell := range row {
		columns = append(columns, cell.Text())
	}
	return trimTrailingEmpty(columns)
}

func trimTrailingEmpty(columns []string) []string {
	for len(columns) > 0 && columns[len(columns)-1] == "" {
		columns = columns[:len(columns)-1]
	}
	return columns
}
