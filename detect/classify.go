package detect

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/CDdanieldeng/excel-accelerator/model"
)

// IsNumericCell reports whether text represents a number once thousands
// separators and spacing are stripped. Full-width characters are folded
// to their narrow forms first, so full-width digits classify as numeric.
func (d *Detector) IsNumericCell(text string) bool {
	s := width.Fold.String(text)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsEmptyRow reports whether every cell in the row is empty.
func (d *Detector) IsEmptyRow(row model.Row) bool {
	return row.IsEmpty()
}

// HeaderScore scores how header-like a row is. Headers are mostly labels,
// so a high text ratio scores high and a high numeric ratio is penalized;
// rows with three or more non-empty cells get a width bonus. Empty rows
// score 0.
func (d *Detector) HeaderScore(row model.Row) float64 {
	textCount, numericCount := d.countCells(row)
	total := textCount + numericCount
	if total == 0 {
		return 0
	}

	textRatio := float64(textCount) / float64(total)
	numericRatio := float64(numericCount) / float64(total)

	score := textRatio*headerTextWeight - numericRatio*headerNumericPenalty
	if total >= headerWidthMin {
		score += headerWidthBonus
	}
	return score
}

// DataScore scores how data-like a row is. Data rows skew numeric but may
// carry text codes, so the text ratio still contributes a little. Empty
// rows score 0.
func (d *Detector) DataScore(row model.Row) float64 {
	textCount, numericCount := d.countCells(row)
	total := textCount + numericCount
	if total == 0 {
		return 0
	}

	textRatio := float64(textCount) / float64(total)
	numericRatio := float64(numericCount) / float64(total)

	return numericRatio*dataNumericWeight + textRatio*dataTextWeight
}

// countCells classifies every non-empty cell in the row as text or
// numeric.
func (d *Detector) countCells(row model.Row) (textCount, numericCount int) {
	for _, cell := range row {
		if cell.IsEmpty() {
			continue
		}
		if d.IsNumericCell(cell.Text()) {
			numericCount++
		} else {
			textCount++
		}
	}
	return textCount, numericCount
}
