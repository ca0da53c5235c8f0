// Package model provides the data model shared by the detection engine
// and its callers.
//
// This package defines the types that cross the engine boundary: the raw
// cell grid handed in by a file decoder, and the detection result handed
// back out. The engine itself lives in the detect package; model contains
// no heuristics.
//
// # Grids
//
// A [Grid] is an ordered sequence of [Row] values, one grid per sheet.
// Rows may be ragged; consumers pad rather than reject. A [Sheet] pairs a
// grid with its sheet name:
//
//	sheet := model.Sheet{
//	    Name: "Sheet1",
//	    Rows: model.Grid{
//	        model.RowOf("Name", "Age", "Score"),
//	        model.RowOf("Alice", "30", "90"),
//	    },
//	}
//
// # Cells
//
// [Cell] is a closed sum: a cell is either empty or holds trimmed text.
// [NewCell] normalizes at construction, so text that is blank after
// trimming and text that was never present are indistinguishable, which
// is exactly the equivalence the detection heuristics rely on.
//
// # Results
//
// [SheetResult] is produced once per sheet and mutated only by the sheet
// ranker, which sets IsMain on exactly one result. [HeaderRegion] is the
// closed row interval chosen as the header. [Preview] holds the header
// rows followed by a bounded number of data rows, with export helpers:
//
//   - [Preview.ToMarkdown] - markdown table
//   - [Preview.ToCSV] - CSV text
package model
