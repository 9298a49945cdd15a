package classify

import "strings"

// Kind identifies which reconstruction strategy applies to a paste.
type Kind int

const (
	// KindPlain indicates a regular table needing only padding.
	KindPlain Kind = iota
	// KindSplitRow indicates logical rows split across a lone rank line and
	// a data line.
	KindSplitRow
	// KindSpanningHeader indicates a wide header row over a sub-header row.
	KindSpanningHeader
	// KindMultilineHeader indicates header text broken across physical lines.
	KindMultilineHeader
	// KindWikipedia indicates footnotes, units, coordinates, or irregular
	// early column counts without a more specific structure.
	KindWikipedia
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSplitRow:
		return "split-row"
	case KindSpanningHeader:
		return "spanning-header"
	case KindMultilineHeader:
		return "multiline-header"
	case KindWikipedia:
		return "wikipedia"
	default:
		return "plain"
	}
}

// Classify runs the structural detectors in priority order and returns the
// kind whose reconstruction strategy should run. Exactly one strategy runs
// per paste; the priority order resolves overlapping detections.
func Classify(rows [][]string, maxCols int, cfg Config) Kind {
	switch {
	case DetectSplitRows(rows, maxCols, cfg):
		return KindSplitRow
	case DetectSpanningHeader(rows, cfg):
		return KindSpanningHeader
	case DetectMultilineHeader(rows, cfg):
		return KindMultilineHeader
	case DetectWikipediaStyle(rows, cfg):
		return KindWikipedia
	default:
		return KindPlain
	}
}

// DetectSplitRows reports whether logical rows appear split across a lone
// numeric rank line and a following data line. Row 0 is ignored as a likely
// header.
func DetectSplitRows(rows [][]string, maxCols int, cfg Config) bool {
	if len(rows) < 3 || maxCols < 3 {
		return false
	}
	rankRows := 0
	fullRows := 0
	for _, row := range rows[1:] {
		n := NonEmptyCount(row)
		if n == 1 && IsShortNumeric(FirstNonEmpty(row)) {
			rankRows++
			continue
		}
		if n >= maxCols-cfg.SplitFullRowSlack && n > 1 {
			fullRows++
		}
	}
	if rankRows < cfg.MinSplitPairs || fullRows < cfg.MinSplitPairs {
		return false
	}
	diff := rankRows - fullRows
	if diff < 0 {
		diff = -diff
	}
	return diff <= cfg.SplitCountSlack
}

// DetectSpanningHeader reports whether row 0 is a wide main header and row 1
// a short row of sub-header labels.
func DetectSpanningHeader(rows [][]string, cfg Config) bool {
	if len(rows) < 2 {
		return false
	}
	mainCount := NonEmptyCount(rows[0])
	if mainCount < cfg.MinSpanMainCells {
		return false
	}
	subCount := NonEmptyCount(rows[1])
	if subCount < 2 || subCount > mainCount/2 {
		return false
	}
	for _, cell := range rows[1] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if CellWidth(cell) > cfg.MaxSubHeaderWidth || IsPurelyNumeric(cell) {
			return false
		}
	}
	return true
}

// DetectMultilineHeader reports whether header text is spread across the
// leading physical lines: early column counts vary, a unit annotation appears
// among them, and a later row begins with a short numeric token marking where
// data starts.
func DetectMultilineHeader(rows [][]string, cfg Config) bool {
	scan := cfg.ScanRows
	if scan > len(rows) {
		scan = len(rows)
	}
	if scan < 2 {
		return false
	}

	counts := make(map[int]bool)
	hasUnit := false
	for _, row := range rows[:scan] {
		counts[NonEmptyCount(row)] = true
		for _, cell := range row {
			if HasUnitToken(cell) {
				hasUnit = true
			}
		}
	}
	if len(counts) < 2 || !hasUnit {
		return false
	}

	last := cfg.DataStartMax
	if last > len(rows)-1 {
		last = len(rows) - 1
	}
	for i := cfg.DataStartMin; i <= last; i++ {
		if len(rows[i]) > 0 && IsShortNumeric(rows[i][0]) {
			return true
		}
	}
	return false
}

// DetectWikipediaStyle reports whether the paste shows any Wikipedia-table
// fingerprint: footnote markers, irregular early column counts, or unit and
// coordinate tokens.
func DetectWikipediaStyle(rows [][]string, cfg Config) bool {
	scan := cfg.FootnoteScanRows
	if scan > len(rows) {
		scan = len(rows)
	}
	for _, row := range rows[:scan] {
		for _, cell := range row {
			if HasFootnote(cell) {
				return true
			}
		}
	}

	scan = cfg.ScanRows
	if scan > len(rows) {
		scan = len(rows)
	}
	counts := make(map[int]bool)
	for _, row := range rows[:scan] {
		counts[NonEmptyCount(row)] = true
		for _, cell := range row {
			if HasUnitToken(cell) || HasCoordinate(cell) {
				return true
			}
		}
	}
	return len(counts) > 1
}

// HasComplexHeader is the secondary check applied when only the generic
// Wikipedia detector fired: it decides between building a synthetic header
// (true) and per-row cleaning with the structure left alone (false).
func HasComplexHeader(rows [][]string, cfg Config) bool {
	scan := cfg.ScanRows
	if scan > len(rows) {
		scan = len(rows)
	}
	counts := make(map[int]bool)
	hasCoordinate := false
	hasUnitRow := false
	for _, row := range rows[:scan] {
		counts[NonEmptyCount(row)] = true
		for _, cell := range row {
			if HasCoordinate(cell) {
				hasCoordinate = true
			}
		}
		if isUnitRow(row) {
			hasUnitRow = true
		}
	}
	if len(counts) < cfg.MinComplexDistinct {
		return false
	}
	return hasCoordinate || hasUnitRow
}

// isUnitRow reports whether every non-empty cell of row is a unit annotation,
// as in the "mi2 / km2" sub-header lines of area tables.
func isUnitRow(row []string) bool {
	n := 0
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if !HasUnitToken(cell) {
			return false
		}
		n++
	}
	return n >= 2
}
