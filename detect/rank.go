package detect

import (
	"github.com/CDdanieldeng/excel-accelerator/model"
)

// MarkMainSheet marks exactly one result as the main sheet and returns
// the updated slice.
//
// A lone sheet is main unconditionally. Otherwise the sheet whose grid
// has the most non-empty rows wins; the running maximum advances only on
// strict improvement, so the earliest sheet wins ties. The sheets slice
// must parallel results; a missing grid counts zero rows.
func (d *Detector) MarkMainSheet(results []model.SheetResult, sheets []model.Sheet) []model.SheetResult {
	if len(results) == 0 {
		return results
	}
	if len(results) == 1 {
		results[0].IsMain = true
		return results
	}

	counts := make([]int, len(results))
	for i := range results {
		if i < len(sheets) {
			counts[i] = sheets[i].Rows.NonEmptyRowCount()
		}
		d.logger.Info("sheet valid rows", "sheet", results[i].Name, "valid_rows", counts[i])
	}

	maxIndex := 0
	maxCount := counts[0]
	for i, count := range counts {
		if count > maxCount {
			maxIndex = i
			maxCount = count
		}
	}

	for i := range results {
		results[i].IsMain = i == maxIndex
	}

	d.logger.Info("main sheet marked",
		"sheet", results[maxIndex].Name,
		"valid_rows", maxCount)
	return results
}
