package detect

import (
	"testing"

	"github.com/CDdanieldeng/excel-accelerator/model"
)

// makeSheet builds a sheet with a header row and n-1 data rows, so its
// grid has exactly n non-empty rows.
func makeSheet(name string, n int) model.Sheet {
	rows := make(model.Grid, 0, n)
	rows = append(rows, model.RowOf("Name", "Age", "Score"))
	for i := 1; i < n; i++ {
		rows = append(rows, model.RowOf("Alice", "30", "90"))
	}
	return model.Sheet{Name: name, Rows: rows}
}

func detectAll(d *Detector, sheets []model.Sheet) []model.SheetResult {
	results := make([]model.SheetResult, len(sheets))
	for i, sheet := range sheets {
		results[i] = d.DetectSheet(sheet)
	}
	return results
}

func mainIndex(t *testing.T, results []model.SheetResult) int {
	t.Helper()
	index := -1
	for i, r := range results {
		if !r.IsMain {
			continue
		}
		if index >= 0 {
			t.Fatalf("Multiple main sheets: %d and %d", index, i)
		}
		index = i
	}
	if index < 0 {
		t.Fatal("No main sheet marked")
	}
	return index
}

func TestMarkMainSheet_SingleSheet(t *testing.T) {
	d := NewDetector()

	sheets := []model.Sheet{{Name: "only"}} // empty grid still wins
	results := d.MarkMainSheet(detectAll(d, sheets), sheets)

	if got := mainIndex(t, results); got != 0 {
		t.Errorf("Expected sheet 0 as main, got %d", got)
	}
}

func TestMarkMainSheet_MostRowsWins(t *testing.T) {
	d := NewDetector()

	sheets := []model.Sheet{
		makeSheet("small", 3),
		makeSheet("large", 17),
		makeSheet("medium", 9),
	}
	results := d.MarkMainSheet(detectAll(d, sheets), sheets)

	if got := mainIndex(t, results); got != 1 {
		t.Errorf("Expected sheet 1 as main, got %d", got)
	}
}

func TestMarkMainSheet_TieKeepsFirst(t *testing.T) {
	d := NewDetector()

	sheets := []model.Sheet{
		makeSheet("first", 5),
		makeSheet("second", 5),
	}
	results := d.MarkMainSheet(detectAll(d, sheets), sheets)

	if got := mainIndex(t, results); got != 0 {
		t.Errorf("Expected sheet 0 as main on a tie, got %d", got)
	}
}

// Blank rows never count toward the ranking, wherever they sit.
func TestMarkMainSheet_IgnoresBlankRows(t *testing.T) {
	d := NewDetector()

	padded := makeSheet("padded", 3)
	for i := 0; i < 10; i++ {
		padded.Rows = append(padded.Rows, model.Row{})
	}
	sheets := []model.Sheet{padded, makeSheet("dense", 4)}
	results := d.MarkMainSheet(detectAll(d, sheets), sheets)

	if got := mainIndex(t, results); got != 1 {
		t.Errorf("Expected sheet 1 as main, got %d", got)
	}
}

func TestMarkMainSheet_NoResults(t *testing.T) {
	d := NewDetector()

	if results := d.MarkMainSheet(nil, nil); len(results) != 0 {
		t.Errorf("Expected no results, got %v", results)
	}
}
