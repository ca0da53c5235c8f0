package detect

import (
	"github.com/CDdanieldeng/excel-accelerator/model"
)

// FindHeaderRegion finds the header region, potentially spanning multiple
// rows, within the first MaxHeaderSearchRows rows of the grid.
//
// Every contiguous region of up to MaxRegionRows rows is scored by its
// mean header score combined with a look-ahead validation score, and the
// best candidate is accepted unless a clearly strong single row exists.
// An empty grid yields the degenerate region [0, 0].
func (d *Detector) FindHeaderRegion(rows model.Grid) model.HeaderRegion {
	searchRows := len(rows)
	if d.config.MaxHeaderSearchRows < searchRows {
		searchRows = d.config.MaxHeaderSearchRows
	}
	if searchRows == 0 {
		return model.HeaderRegion{Start: 0, End: 0}
	}

	// Per-row header scores; empty rows get a sentinel that keeps them
	// from ever being selected.
	scores := make([]float64, searchRows)
	for i := 0; i < searchRows; i++ {
		if rows[i].IsEmpty() {
			scores[i] = emptyRowScore
			continue
		}
		scores[i] = d.HeaderScore(rows[i])
		d.logger.Debug("row header score", "row", i, "score", scores[i])
	}

	// Best single header row; first maximum wins.
	bestSingleIndex := 0
	bestSingleScore := scores[0]
	for i := 1; i < searchRows; i++ {
		if scores[i] > bestSingleScore {
			bestSingleIndex = i
			bestSingleScore = scores[i]
		}
	}

	maxSize := d.config.MaxRegionRows
	if searchRows < maxSize {
		maxSize = searchRows
	}

	// Enumerate candidate regions by size, then start index. Ties keep
	// the earlier candidate, so smaller regions and smaller start indices
	// win by enumeration order.
	bestStart, bestEnd := -1, -1
	bestCombined := 0.0
	for size := 1; size <= maxSize; size++ {
		for start := 0; start+size <= searchRows; start++ {
			end := start + size - 1
			if hasInteriorEmptyRow(rows, start, end) {
				continue
			}

			sum := 0.0
			for i := start; i <= end; i++ {
				sum += scores[i]
			}
			avg := sum / float64(size)

			validation := d.validateCandidate(rows, start, end)
			combined := avg*regionScoreWeight + validation*validationScoreWeight
			d.logger.Debug("header region candidate",
				"start", start,
				"end", end,
				"avg_score", avg,
				"validation", validation,
				"combined", combined)

			if bestStart < 0 || combined > bestCombined {
				bestStart, bestEnd, bestCombined = start, end, combined
			}
		}
	}

	// Accept the region candidate unless a clearly strong single row
	// exists. A low single-row score may itself indicate a multi-row
	// header, so the rule is two-sided.
	if bestStart >= 0 && (bestCombined > bestSingleScore*d.config.MultiRowMargin || bestSingleScore < d.config.LowConfidence) {
		d.logger.Info("header region detected",
			"start", bestStart,
			"end", bestEnd,
			"score", bestCombined)
		return model.HeaderRegion{Start: bestStart, End: bestEnd}
	}

	d.logger.Info("single-row header detected",
		"row", bestSingleIndex,
		"score", bestSingleScore)
	return model.HeaderRegion{Start: bestSingleIndex, End: bestSingleIndex}
}

// hasInteriorEmptyRow reports whether any row strictly between start and
// end is empty. A blank interior row breaks header continuity.
func hasInteriorEmptyRow(rows model.Grid, start, end int) bool {
	for i := start + 1; i < end; i++ {
		if rows[i].IsEmpty() {
			return true
		}
	}
	return false
}

// validateCandidate scores a header candidate by checking whether the
// rows that follow it look like data. It averages the data scores of the
// non-empty rows among the next LookaheadRows rows, adds a bonus when the
// region's mean header score exceeds that average, and halves the score
// otherwise. With no non-empty following rows the validation score is 0.
func (d *Detector) validateCandidate(rows model.Grid, start, end int) float64 {
	dataStart := end + 1
	if dataStart >= len(rows) {
		return 0
	}

	limit := dataStart + d.config.LookaheadRows
	if len(rows) < limit {
		limit = len(rows)
	}
	dataSum := 0.0
	dataCount := 0
	for i := dataStart; i < limit; i++ {
		if rows[i].IsEmpty() {
			continue
		}
		dataSum += d.DataScore(rows[i])
		dataCount++
	}
	if dataCount == 0 {
		return 0
	}
	avgDataScore := dataSum / float64(dataCount)

	headerSum := 0.0
	headerCount := 0
	for i := start; i <= end; i++ {
		if rows[i].IsEmpty() {
			continue
		}
		headerSum += d.HeaderScore(rows[i])
		headerCount++
	}
	if headerCount == 0 {
		return 0
	}
	avgHeaderScore := headerSum / float64(headerCount)

	score := avgDataScore * validationDataWeight
	if avgHeaderScore > avgDataScore {
		score += validationHeaderBonus
	} else {
		score *= validationPenaltyFactor
	}
	return score
}
