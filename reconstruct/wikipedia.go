package reconstruct

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rich-iannone/sweet-data-sub000/classify"
	"github.com/rich-iannone/sweet-data-sub000/clean"
)

// headerSanitizeRe matches characters that have no place in a synthesized
// header name; they are replaced with underscores.
var headerSanitizeRe = regexp.MustCompile(`[^\w\s()\-]`)

// Wikipedia handles tables that show Wikipedia fingerprints (footnotes,
// units, coordinates, irregular early column counts) without a more specific
// structure. Tables with genuinely complex headers get a synthesized header
// row; regular tables keep their structure and only have their cells cleaned.
func Wikipedia(rows [][]string, maxCols int, cfg classify.Config) Result {
	if classify.HasComplexHeader(rows, cfg) {
		return buildWikiHeader(rows, maxCols, cfg)
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, pad(clean.Row(row), maxCols))
	}
	return Result{Rows: out, NumCols: maxCols}
}

// buildWikiHeader synthesizes a header row from the most label-like early
// row, then drops the remaining pre-data lines.
func buildWikiHeader(rows [][]string, maxCols int, cfg classify.Config) Result {
	src := headerSourceRow(rows, cfg)

	headers := make([]string, maxCols)
	for i := range headers {
		cell := ""
		if i < len(src) {
			cell = strings.TrimSpace(src[i])
		}
		if cell != "" {
			cell = clean.Footnotes(cell)
			cell = headerSanitizeRe.ReplaceAllString(cell, "_")
			cell = strings.TrimSpace(cell)
		}
		if cell == "" {
			cell = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = cell
	}

	dataStart := findWikiDataStart(rows, maxCols, cfg)

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

// headerSourceRow picks, among the first few rows, the one with the most
// cells that are non-empty and not purely numeric.
func headerSourceRow(rows [][]string, cfg classify.Config) []string {
	best := 0
	bestScore := -1
	for i := 0; i < len(rows) && i < cfg.HeaderScanRows; i++ {
		score := 0
		for _, cell := range rows[i] {
			if strings.TrimSpace(cell) != "" && !classify.IsPurelyNumeric(cell) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return rows[best]
}

// findWikiDataStart scans from row 2 for the first row that looks like data:
// most columns populated and a first cell that is numeric, reasonably long,
// or accompanied by substantial neighbors.
func findWikiDataStart(rows [][]string, maxCols int, cfg classify.Config) int {
	for i := 2; i < len(rows); i++ {
		row := rows[i]
		if float64(classify.NonEmptyCount(row)) < cfg.MinWikiDataRatio*float64(maxCols) {
			continue
		}
		first := ""
		if len(row) > 0 {
			first = strings.TrimSpace(row[0])
		}
		if classify.IsPurelyNumeric(first) || len(first) > 3 || leadingCellsPopulated(row) {
			return i
		}
	}
	if len(rows) > 1 {
		return 1
	}
	return 0
}

// leadingCellsPopulated reports whether at least two of the first three cells
// hold content.
func leadingCellsPopulated(row []string) bool {
	n := 0
	for i := 0; i < len(row) && i < 3; i++ {
		if strings.TrimSpace(row[i]) != "" {
			n++
		}
	}
	return n >= 2
}
