// Package accelerator provides a fluent API for detecting table headers
// and data regions in raw spreadsheet grids.
//
// Basic usage:
//
//	results, err := accelerator.Sheets(sheet).Detect()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(results[0].DetectedColumns)
//
// With options:
//
//	cfg := detect.DefaultConfig()
//	cfg.MaxHeaderSearchRows = 10
//	results, err := accelerator.Sheets(s1, s2).
//	    Configure(cfg).
//	    Logger(slog.Default()).
//	    Detect()
//
// For advanced use cases, the lower-level detect package is also
// available.
package accelerator

import (
	"log/slog"
	"sync"

	"github.com/CDdanieldeng/excel-accelerator/detect"
	"github.com/CDdanieldeng/excel-accelerator/model"
)

// Run is a fluent detection run over one or more sheets. Construct it
// with Sheets, optionally chain Configure and Logger, then call the
// terminal Detect.
type Run struct {
	sheets   []model.Sheet
	detector *detect.Detector
	err      error
}

// Sheets starts a detection run over the given sheets, typically all
// sheets of one workbook in file order.
func Sheets(sheets ...model.Sheet) *Run {
	return &Run{
		sheets:   sheets,
		detector: detect.NewDetector(),
	}
}

// Configure replaces the default detector configuration. An invalid
// configuration is reported by Detect.
func (r *Run) Configure(cfg detect.Config) *Run {
	if r.err == nil {
		r.err = r.detector.Configure(cfg)
	}
	return r
}

// Logger sets the logger used for detection diagnostics.
func (r *Run) Logger(logger *slog.Logger) *Run {
	r.detector.SetLogger(logger)
	return r
}

// Detect runs header detection for every sheet and marks the main sheet.
//
// Sheets are independent, so detection fans out across goroutines, one
// per sheet; results keep the input order. The ranker runs once all
// sheets are done, as the single reduction step.
func (r *Run) Detect() ([]model.SheetResult, error) {
	if r.err != nil {
		return nil, r.err
	}

	results := make([]model.SheetResult, len(r.sheets))
	var wg sync.WaitGroup
	for i := range r.sheets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.detector.DetectSheet(r.sheets[i])
		}(i)
	}
	wg.Wait()

	return r.detector.MarkMainSheet(results, r.sheets), nil
}
