package reconstruct

import (
	"fmt"
	"strings"

	"github.com/rich-iannone/sweet-data-sub000/classify"
	"github.com/rich-iannone/sweet-data-sub000/clean"
)

// MultilineHeader merges a header block that the source broke across several
// physical lines ("Average mass" on one line, "[tonnes]" on the next) into a
// single header row, then cleans the data rows beneath it.
//
// The physical lines of the header block are left-aligned by the copy, so a
// unit annotation rarely sits at the column index of the header it belongs
// to. The block is therefore flattened in reading order: a short bracketed or
// parenthesized token attaches to the header that precedes it, anything else
// starts the next header.
func MultilineHeader(rows [][]string, maxCols int, cfg classify.Config) Result {
	dataStart := findDataStart(rows, maxCols, cfg)

	headers := mergeHeaderBlock(rows[:dataStart], maxCols, cfg)

	out := make([][]string, 0, len(rows)-dataStart+1)
	out = append(out, headers)
	for _, row := range rows[dataStart:] {
		cleaned := clean.Row(row)
		if classify.NonEmptyCount(cleaned) == 0 {
			continue
		}
		out = append(out, pad(cleaned, maxCols))
	}

	return Result{Rows: out, NumCols: maxCols, HeaderDecided: true, HasHeaders: true}
}

// findDataStart locates the first real data row: purely numeric first cell
// and most columns populated. When no row qualifies the header block is
// assumed to end within the first few lines.
func findDataStart(rows [][]string, maxCols int, cfg classify.Config) int {
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if classify.IsPurelyNumeric(row[0]) &&
			float64(classify.NonEmptyCount(row)) >= cfg.MinDataRowRatio*float64(maxCols) {
			return i
		}
	}

	fallback := len(rows) / 2
	if fallback < 3 {
		fallback = 3
	}
	if fallback > len(rows) {
		fallback = len(rows)
	}
	return fallback
}

// mergeHeaderBlock flattens the header rows in reading order, attaching unit
// suffixes, and fits the result to maxCols.
func mergeHeaderBlock(block [][]string, maxCols int, cfg classify.Config) []string {
	var headers []string
	for _, row := range block {
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if classify.IsUnitSuffix(cell, cfg) && len(headers) > 0 {
				headers[len(headers)-1] += " " + cell
				continue
			}
			headers = append(headers, cell)
		}
	}

	headers = clean.Row(headers)
	for len(headers) < maxCols {
		headers = append(headers, fmt.Sprintf("Column_%d", len(headers)+1))
	}
	return headers[:maxCols]
}
