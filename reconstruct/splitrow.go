package reconstruct

import (
	"github.com/rich-iannone/sweet-data-sub000/classify"
	"github.com/rich-iannone/sweet-data-sub000/clean"
)

// SplitRows merges logical rows that the source rendered as two physical
// lines: a lone rank number, then the remaining fields. Row 0 is carried
// through as a header candidate; whether it really is a header is left to
// header detection.
func SplitRows(rows [][]string, maxCols int, cfg classify.Config) Result {
	out := make([][]string, 0, len(rows))
	if len(rows) > 0 {
		out = append(out, pad(clean.Row(rows[0]), maxCols))
	}

	i := 1
	for i < len(rows) {
		row := rows[i]
		if classify.NonEmptyCount(row) == 1 && classify.IsShortNumeric(classify.FirstNonEmpty(row)) &&
			i+1 < len(rows) && classify.NonEmptyCount(rows[i+1]) >= cfg.MinRecordCells {
			merged := make([]string, 0, len(rows[i+1])+1)
			merged = append(merged, classify.FirstNonEmpty(row))
			merged = append(merged, rows[i+1]...)
			out = append(out, pad(clean.Row(merged), maxCols))
			i += 2
			continue
		}
		out = append(out, pad(clean.Row(row), maxCols))
		i++
	}

	return Result{Rows: out, NumCols: maxCols}
}
