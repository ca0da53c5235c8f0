// Package detect infers where the column header sits in a raw cell grid
// and where tabular data begins, without any user-supplied schema.
//
// Detection is performed by a [Detector], which is pure and synchronous:
// it owns no state beyond its configuration, so one detector may be shared
// across goroutines and sheets may be processed in parallel.
//
// # Row Classification
//
// Every non-empty cell in a row is classified as text or numeric. A cell
// is numeric when it parses as a floating-point number after thousands
// separators and spacing are removed; full-width characters are folded to
// their narrow forms first. From the text/numeric split two scores are
// derived:
//
//   - [Detector.HeaderScore] - text-heavy rows score high, with a bonus
//     for rows carrying three or more labels
//   - [Detector.DataScore] - numeric-heavy rows score high
//
// The two scores are deliberately not complements: both are evaluated on
// the same rows for different purposes (header candidacy vs. look-ahead
// validation).
//
// # Region Search
//
// [Detector.FindHeaderRegion] scans a bounded window at the top of the
// grid and enumerates every contiguous candidate region of one to
// MaxRegionRows rows. Regions with an empty interior row are discarded: a
// blank row breaks header continuity. Each surviving candidate is scored
// by combining its mean header score (70%) with a validation score (30%)
// derived from the rows that follow it - a real header should be followed
// by rows that look like data. The best candidate wins unless a clearly
// strong single row exists; see [Config.MultiRowMargin] and
// [Config.LowConfidence] for the two-sided decision rule.
//
// # Header Merging
//
// [Detector.MergeColumns] collapses the chosen region into one ordered
// list of column names. Multi-row (spanned) headers are reconstructed from
// blank-cell adjacency alone: a blank cell above a label, next to a filled
// left neighbor, is read as the horizontal continuation of a merged cell.
// The per-column parts are joined with "/", so a "Sales" heading spanning
// "Q1" and "Q2" yields "Sales/Q1" and "Sales/Q2". This is a heuristic
// approximation - no cell-merge metadata is available at this layer - and
// its exact behavior is pinned by tests; changing it is a policy decision,
// not a bug fix.
//
// # Sheet Ranking
//
// [Detector.MarkMainSheet] marks exactly one sheet of a workbook as the
// main sheet: the one with the most non-empty rows, earliest sheet
// winning ties. A lone sheet is main unconditionally.
//
// # Configuration
//
// Tuning lives in [Config]:
//
//	cfg := detect.DefaultConfig()
//	cfg.MaxHeaderSearchRows = 10
//	d := detect.NewDetector()
//	if err := d.Configure(cfg); err != nil {
//	    // handle error
//	}
//
// The engine never fails on well-formed grids, empty ones included; an
// empty grid yields a degenerate low-confidence result rather than an
// error.
package detect
