package detect

import (
	"reflect"
	"testing"

	"github.com/CDdanieldeng/excel-accelerator/model"
)

func TestMergeColumns_SingleRow(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		row  model.Row
		want []string
	}{
		{"plain", model.RowOf("Name", "Age", "Score"), []string{"Name", "Age", "Score"}},
		{"trailing blanks trimmed", model.RowOf("A", "B", "", "", ""), []string{"A", "B"}},
		{"interior blank preserved", model.RowOf("A", "", "C"), []string{"A", "", "C"}},
		{"leading blank preserved", model.RowOf("", "B"), []string{"", "B"}},
		{"whitespace trimmed", model.RowOf("  Name  ", "Age"), []string{"Name", "Age"}},
		{"all blank", model.RowOf("", "", ""), []string{}},
	}

	for _, tt := range tests {
		got := d.MergeColumns([]model.Row{tt.row})
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: MergeColumns = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMergeColumns_SpannedHeader(t *testing.T) {
	d := NewDetector()

	got := d.MergeColumns([]model.Row{
		model.RowOf("Sales", "", ""),
		model.RowOf("Region", "Q1", "Q2"),
	})
	want := []string{"Sales/Region", "Q1", "Q2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeColumns = %v, want %v", got, want)
	}
}

func TestMergeColumns_TwoSpans(t *testing.T) {
	d := NewDetector()

	got := d.MergeColumns([]model.Row{
		model.RowOf("Sales", "", "", "Costs", ""),
		model.RowOf("Region", "Q1", "Q2", "Region", "Q1"),
	})
	want := []string{"Sales/Region", "Q1", "Q2", "Costs/Region", "Q1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeColumns = %v, want %v", got, want)
	}
}

// A blank cell above a label whose left neighbor is filled reads as the
// horizontal continuation of a merged cell once the column already has a
// value: the label updates the carry without starting a new segment.
func TestMergeColumns_MergedCellContinuation(t *testing.T) {
	d := NewDetector()

	got := d.MergeColumns([]model.Row{
		model.RowOf("Top", "Q1"),
		model.RowOf("Mid", ""),
		model.RowOf("Bot", "Sub"),
	})
	want := []string{"Top/Mid/Bot", "Q1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeColumns = %v, want %v", got, want)
	}
}

func TestMergeColumns_RaggedRowsPadded(t *testing.T) {
	d := NewDetector()

	got := d.MergeColumns([]model.Row{
		model.RowOf("A", "B", "C"),
		model.RowOf("X"),
	})
	want := []string{"A/X", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeColumns = %v, want %v", got, want)
	}
}

func TestMergeColumns_MultiRowTrailingBlanksTrimmed(t *testing.T) {
	d := NewDetector()

	got := d.MergeColumns([]model.Row{
		model.RowOf("A", "", ""),
		model.RowOf("X", "Y", ""),
	})
	want := []string{"A/X", "Y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeColumns = %v, want %v", got, want)
	}
}

func TestMergeColumns_NoRows(t *testing.T) {
	d := NewDetector()

	got := d.MergeColumns(nil)
	if len(got) != 0 {
		t.Errorf("Expected no columns, got %v", got)
	}
}
