package classify

// Config holds the heuristic thresholds used by the structural detectors and
// the reconstruction strategies.
type Config struct {
	// ScanRows is how many leading rows the structure detectors examine.
	ScanRows int

	// FootnoteScanRows is how many leading rows are checked for footnote
	// markers when deciding Wikipedia style.
	FootnoteScanRows int

	// HeaderScanRows is how many leading rows are candidates for the header
	// source row when building a generic Wikipedia header.
	HeaderScanRows int

	// MinSplitPairs is the minimum number of lone-rank rows (and of near-full
	// data rows) required to classify a paste as split-row.
	MinSplitPairs int

	// SplitCountSlack is the maximum difference allowed between the lone-rank
	// row count and the near-full data row count.
	SplitCountSlack int

	// SplitFullRowSlack is how many cells short of the maximum column count a
	// row may be while still counting as a near-full data row.
	SplitFullRowSlack int

	// MinSpanMainCells is the minimum non-empty cell count of row 0 for
	// spanning-header detection.
	MinSpanMainCells int

	// MaxSubHeaderWidth is the maximum display width of a sub-header cell.
	MaxSubHeaderWidth int

	// MaxUnitSuffixWidth is the maximum display width of a bracketed or
	// parenthesized token treated as a unit suffix for a header cell.
	MaxUnitSuffixWidth int

	// MinDataRowRatio is the minimum fraction of columns that must be
	// non-empty for a row to start the data block of a multiline-header table.
	MinDataRowRatio float64

	// MinWikiDataRatio is the minimum fraction of columns that must be
	// non-empty for a row to start the data block of a generic Wikipedia
	// table.
	MinWikiDataRatio float64

	// MinRecordCells is the minimum non-empty cell count for a physical line
	// to start a new logical record during spanning-header reconstruction.
	MinRecordCells int

	// DataStartMin and DataStartMax bound the row window in which the first
	// data row of a multiline-header table must appear.
	DataStartMin int
	DataStartMax int

	// MinComplexDistinct is the minimum number of distinct early column
	// counts for the complex-header secondary check.
	MinComplexDistinct int
}

// DefaultConfig returns the default thresholds. The values are tuned against
// the sample table corpus and should rarely need adjustment.
func DefaultConfig() Config {
	return Config{
		ScanRows:           5,
		FootnoteScanRows:   10,
		HeaderScanRows:     4,
		MinSplitPairs:      2,
		SplitCountSlack:    2,
		SplitFullRowSlack:  2,
		MinSpanMainCells:   6,
		MaxSubHeaderWidth:  50,
		MaxUnitSuffixWidth: 16,
		MinDataRowRatio:    0.6,
		MinWikiDataRatio:   0.5,
		MinRecordCells:     3,
		DataStartMin:       3,
		DataStartMax:       6,
		MinComplexDistinct: 3,
	}
}
