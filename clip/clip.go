// Package clip turns raw clipboard text into tokenized rows.
//
// The pipeline stages here are deliberately dumb: [FilterLines] drops blank
// lines and leading caption lines, [DetectSeparator] sniffs the delimiter
// from the first line, and [Tokenize] splits every line with that one
// delimiter. Everything smarter - merging split rows, rebuilding headers -
// happens downstream, so rows leave this package unpadded.
package clip

import (
	"strings"

	"github.com/rich-iannone/sweet-data-sub000/model"
)

// FilterLines splits raw clipboard text into lines, dropping lines that are
// empty after trimming and leading title or caption lines.
//
// A leading line with no delimiter occurrences is treated as a caption when
// one of the next two lines does contain a delimiter: copied web tables often
// arrive with their caption ("Highest-grossing films of 2025[12]") as the
// first pasted line, and it must not corrupt column-count detection. Caption
// dropping stops at the first delimited line, so lone rank lines inside a
// split-row table are never mistaken for captions.
func FilterLines(text string) []string {
	// Tabs are the primary caption signal; fall back to commas only when the
	// paste contains no tab at all.
	delim := "\t"
	if !strings.Contains(text, "\t") {
		delim = ","
	}

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	// Drop leading captions. A table may carry more than one caption line.
	for len(lines) > 0 && strings.Count(lines[0], delim) == 0 {
		delimited := false
		for i := 1; i < len(lines) && i <= 2; i++ {
			if strings.Count(lines[i], delim) > 0 {
				delimited = true
				break
			}
		}
		if !delimited {
			break
		}
		lines = lines[1:]
	}

	return lines
}

// DetectSeparator sniffs the cell delimiter from the first line. Tabs win
// over commas, since commas appear inside numeric values and prose. The
// second return value is false when the input is a single line with no
// delimiter at all: a single cell is not a table.
func DetectSeparator(lines []string) (model.Separator, bool) {
	if len(lines) == 0 {
		return model.SepNone, false
	}
	first := lines[0]
	if strings.Count(first, "\t") > 0 {
		return model.SepTab, true
	}
	if strings.Count(first, ",") > 0 {
		return model.SepComma, true
	}
	if len(lines) > 1 {
		return model.SepNone, true
	}
	return model.SepNone, false
}

// Tokenize splits every line on the separator, trimming each resulting cell,
// and returns the rows together with the maximum cell count seen. Rows are
// not padded here: some reconstruction strategies restructure rows before
// padding is meaningful.
func Tokenize(lines []string, sep model.Separator) (rows [][]string, maxCols int) {
	rows = make([][]string, 0, len(lines))
	for _, line := range lines {
		var cells []string
		if d := sep.Delim(); d != "" {
			cells = strings.Split(line, d)
		} else {
			cells = []string{line}
		}
		for i, cell := range cells {
			cells[i] = strings.TrimSpace(cell)
		}
		if len(cells) > maxCols {
			maxCols = len(cells)
		}
		rows = append(rows, cells)
	}
	return rows, maxCols
}
