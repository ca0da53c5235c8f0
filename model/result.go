package model

import (
	"strings"
)

// HeaderRegion is a closed interval [Start, End] of grid row indices
// identifying the rows that together form the header.
type HeaderRegion struct {
	Start int
	End   int
}

// Size returns the number of rows in the region.
func (r HeaderRegion) Size() int {
	return r.End - r.Start + 1
}

// Indices returns every row index in the region, in order.
func (r HeaderRegion) Indices() []int {
	indices := make([]int, 0, r.Size())
	for i := r.Start; i <= r.End; i++ {
		indices = append(indices, i)
	}
	return indices
}

// SheetResult is the detection outcome for one sheet. It is produced once
// per sheet; only the sheet ranker mutates it afterwards, to set IsMain.
type SheetResult struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// IsMain marks the sheet judged to hold the primary dataset.
	IsMain bool `json:"is_main"`
	// HeaderRowIndex is the first header row index, kept alongside
	// HeaderRowIndices for callers that assume a single-row header.
	HeaderRowIndex int `json:"header_row_index"`
	// HeaderRowIndices lists every header row index, in order.
	HeaderRowIndices []int `json:"header_row_indices"`
	// DataStartRowIndex is the index of the first data row.
	DataStartRowIndex int `json:"data_start_row_index"`
	// DetectedColumns holds the merged column names. Interior blanks are
	// preserved as empty strings; trailing blanks are trimmed.
	DetectedColumns []string `json:"detected_columns"`
	// Preview holds the header rows followed by a bounded number of data
	// rows, as raw text cells.
	Preview Preview `json:"preview"`
}

// Preview is the raw-text view of a detected table: the header rows
// followed by up to the configured number of data rows. No type coercion
// is performed; building typed columns is the downstream builder's job.
type Preview struct {
	Rows Grid `json:"rows"`
}

// ToMarkdown converts the preview to a markdown table. The first preview
// row supplies the header line; ragged rows are padded to the widest row.
func (p Preview) ToMarkdown() string {
	if len(p.Rows) == 0 {
		return ""
	}

	cols := p.Rows.MaxCols()
	var sb strings.Builder

	writeRow := func(row Row) {
		for j := 0; j < cols; j++ {
			sb.WriteString("| ")
			if j < len(row) {
				sb.WriteString(strings.ReplaceAll(row[j].Text(), "\n", " "))
			}
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(p.Rows[0])
	for j := 0; j < cols; j++ {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range p.Rows[1:] {
		writeRow(row)
	}

	return sb.String()
}

// ToCSV converts the preview to CSV text. Ragged rows are padded to the
// widest row.
func (p Preview) ToCSV() string {
	cols := p.Rows.MaxCols()
	var sb strings.Builder
	for _, row := range p.Rows {
		for j := 0; j < cols; j++ {
			text := ""
			if j < len(row) {
				text = row[j].Text()
			}
			// Escape quotes and wrap in quotes if necessary
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < cols-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
