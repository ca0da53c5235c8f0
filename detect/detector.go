package detect

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/CDdanieldeng/excel-accelerator/model"
)

// Detector detects table headers and data regions in sheet grids. It
// supports both single-row and multi-row (spanned) headers.
//
// A Detector is safe for concurrent use once configured.
type Detector struct {
	config Config
	logger *slog.Logger
}

// NewDetector creates a detector with the default configuration and a
// logger that discards everything.
func NewDetector() *Detector {
	return &Detector{
		config: DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Configure sets detector parameters.
func (d *Detector) Configure(config Config) error {
	if config.MaxHeaderSearchRows < 1 {
		return fmt.Errorf("MaxHeaderSearchRows must be positive, got %d", config.MaxHeaderSearchRows)
	}
	if config.MaxRegionRows < 1 {
		return fmt.Errorf("MaxRegionRows must be positive, got %d", config.MaxRegionRows)
	}
	if config.LookaheadRows < 0 {
		return fmt.Errorf("LookaheadRows must not be negative, got %d", config.LookaheadRows)
	}
	if config.MaxPreviewRows < 0 {
		return fmt.Errorf("MaxPreviewRows must not be negative, got %d", config.MaxPreviewRows)
	}
	d.config = config
	return nil
}

// Config returns the current configuration.
func (d *Detector) Config() Config {
	return d.config
}

// SetLogger sets the logger used for detection diagnostics. Per-row and
// per-region scores are logged at Debug, decisions at Info. A nil logger
// restores the discarding default.
func (d *Detector) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d.logger = logger
}

// DetectSheet detects the header region and data start of one sheet and
// assembles its result, including a preview of the header rows followed
// by up to MaxPreviewRows data rows.
//
// An empty grid yields a degenerate low-confidence result (header row 0,
// no columns), never an error. IsMain is left false; it is set later by
// MarkMainSheet.
func (d *Detector) DetectSheet(sheet model.Sheet) model.SheetResult {
	rows := sheet.Rows
	d.logger.Info("detecting table", "sheet", sheet.Name, "total_rows", len(rows))

	if len(rows) == 0 {
		return model.SheetResult{
			Name:              sheet.Name,
			HeaderRowIndex:    0,
			HeaderRowIndices:  []int{0},
			DataStartRowIndex: 1,
			DetectedColumns:   []string{},
			Preview:           model.Preview{},
		}
	}

	region := d.FindHeaderRegion(rows)
	indices := region.Indices()
	dataStart := region.End + 1

	headerRows := make([]model.Row, 0, len(indices))
	for _, i := range indices {
		if i < len(rows) {
			headerRows = append(headerRows, rows[i])
		}
	}

	columns := d.MergeColumns(headerRows)

	preview := make(model.Grid, 0, len(headerRows)+d.config.MaxPreviewRows)
	preview = append(preview, headerRows...)
	for i := dataStart; i < len(rows) && i < dataStart+d.config.MaxPreviewRows; i++ {
		preview = append(preview, rows[i])
	}

	d.logger.Info("sheet detected",
		"sheet", sheet.Name,
		"header_rows", indices,
		"data_start", dataStart,
		"columns", len(columns))

	return model.SheetResult{
		Name:              sheet.Name,
		HeaderRowIndex:    region.Start,
		HeaderRowIndices:  indices,
		DataStartRowIndex: dataStart,
		DetectedColumns:   columns,
		Preview:           model.Preview{Rows: preview},
	}
}
