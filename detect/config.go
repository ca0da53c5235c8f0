package detect

// Config holds detector tuning parameters.
type Config struct {
	// MaxHeaderSearchRows bounds the window of rows scanned for header
	// candidates, keeping worst-case cost independent of file size.
	MaxHeaderSearchRows int

	// MaxRegionRows is the largest multi-row header region considered.
	MaxRegionRows int

	// LookaheadRows is how many rows after a candidate region are sampled
	// when validating that real data follows it.
	LookaheadRows int

	// MaxPreviewRows caps the number of data rows included in a preview.
	MaxPreviewRows int

	// MultiRowMargin is the fraction of the best single-row score a
	// region candidate must exceed to be accepted.
	MultiRowMargin float64

	// LowConfidence is the single-row score below which the region
	// search is trusted over the single-row fallback.
	LowConfidence float64
}

// DefaultConfig returns the default detector configuration.
func DefaultConfig() Config {
	return Config{
		MaxHeaderSearchRows: 20,
		MaxRegionRows:       5,
		LookaheadRows:       5,
		MaxPreviewRows:      50,
		MultiRowMargin:      0.9,
		LowConfidence:       0.3,
	}
}

// Scoring weights. These are tuned as a set: the region decision rule
// depends on exact tie-breaks, so individual weights must not be changed
// without behavioral tests pinning the outputs.
const (
	// Header score: textRatio*headerTextWeight - numericRatio*headerNumericPenalty,
	// plus headerWidthBonus for rows with at least headerWidthMin labels.
	headerTextWeight     = 0.7
	headerNumericPenalty = 0.3
	headerWidthBonus     = 0.2
	headerWidthMin       = 3

	// Data score: numericRatio*dataNumericWeight + textRatio*dataTextWeight.
	dataNumericWeight = 0.6
	dataTextWeight    = 0.2

	// Combined region score: mean header score vs. look-ahead validation.
	regionScoreWeight     = 0.7
	validationScoreWeight = 0.3

	// Validation: half the mean data score, plus a bonus when the region
	// out-scores the data that follows it, otherwise halved again.
	validationDataWeight    = 0.5
	validationHeaderBonus   = 0.5
	validationPenaltyFactor = 0.5

	// Sentinel for empty rows inside the search window; never selected.
	emptyRowScore = -1.0
)
