package reconstruct

import (
	"fmt"
	"strings"

	"github.com/rich-iannone/sweet-data-sub000/classify"
	"github.com/rich-iannone/sweet-data-sub000/clean"
)

// SpanningHeader handles tables whose row 0 is a wide main header and row 1 a
// short row of sub-header labels covered by one main header cell (the
// "Writer(s)" over "Story" / "Screenplay" pattern).
//
// The spanning main cell is replaced by one column per sub-header label. The
// raw lines below still follow the old physical layout, frequently spilling a
// single logical record across several lines, so they are regrouped into
// records before padding.
func SpanningHeader(rows [][]string, maxCols int, cfg classify.Config) Result {
	main := rows[0]
	sub := trimmedCells(rows[1])

	header := expandHeader(main, sub)
	numCols := len(header)
	if numCols < maxCols {
		numCols = maxCols
	}

	out := make([][]string, 0, len(rows))
	out = append(out, pad(clean.Row(header), numCols))
	for _, rec := range rebuildRecords(rows[2:], numCols, cfg) {
		out = append(out, pad(clean.Row(rec), numCols))
	}

	return Result{Rows: out, NumCols: numCols, HeaderDecided: true, HasHeaders: true}
}

// expandHeader replaces the spanning main-header cell with one cell per
// sub-header label. When no cell matches the spanning-role vocabulary, the
// sub-header labels are inserted at position 3, which matches where sources
// without a role word put their sub-columns.
func expandHeader(main, sub []string) []string {
	idx := classify.SpanningRoleIndex(main)

	if idx < 0 {
		insert := 3
		if insert > len(main) {
			insert = len(main)
		}
		header := make([]string, 0, len(main)+len(sub))
		header = append(header, main[:insert]...)
		header = append(header, sub...)
		header = append(header, main[insert:]...)
		return header
	}

	base := strings.TrimSpace(main[idx])
	header := make([]string, 0, len(main)-1+len(sub))
	header = append(header, main[:idx]...)
	for n, label := range sub {
		if label == "" {
			header = append(header, fmt.Sprintf("%s_%d", base, n+1))
		} else {
			header = append(header, base+" - "+label)
		}
	}
	header = append(header, main[idx+1:]...)
	return header
}

// rebuildRecords regroups physical lines into logical records. A line starts
// a new record when it has enough non-empty cells and either a rank-like
// first cell or a date-like second cell; anything else continues the current
// record, each cell landing in the first empty slot.
func rebuildRecords(lines [][]string, numCols int, cfg classify.Config) [][]string {
	var records [][]string
	var cur []string

	for _, line := range lines {
		starts := classify.NonEmptyCount(line) >= cfg.MinRecordCells &&
			(classify.IsShortNumeric(line[0]) ||
				(len(line) > 1 && classify.IsDateLike(line[1])))

		if cur == nil || starts {
			if cur != nil {
				records = append(records, cur)
			}
			cur = make([]string, numCols)
			for j, cell := range line {
				if j < numCols {
					cur[j] = cell
				} else {
					appendCell(cur, numCols-1, cell)
				}
			}
			continue
		}

		for _, cell := range line {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if slot := firstEmpty(cur); slot >= 0 {
				cur[slot] = cell
			} else {
				appendCell(cur, numCols-1, cell)
			}
		}
	}
	if cur != nil {
		records = append(records, cur)
	}
	return records
}

func trimmedCells(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

func firstEmpty(row []string) int {
	for i, cell := range row {
		if strings.TrimSpace(cell) == "" {
			return i
		}
	}
	return -1
}

func appendCell(row []string, idx int, cell string) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return
	}
	if row[idx] == "" {
		row[idx] = cell
		return
	}
	row[idx] += "; " + cell
}
