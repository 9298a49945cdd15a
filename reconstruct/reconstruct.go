package reconstruct

import (
	"github.com/rich-iannone/sweet-data-sub000/classify"
	"github.com/rich-iannone/sweet-data-sub000/clean"
)

// Result is the outcome of a reconstruction strategy. Every row in Rows has
// exactly NumCols cells.
type Result struct {
	Rows    [][]string
	NumCols int

	// HeaderDecided reports that the strategy itself determined whether the
	// first row is a header; when false the caller runs header detection.
	HeaderDecided bool
	HasHeaders    bool
}

// Apply runs the strategy for kind over the tokenized rows.
func Apply(kind classify.Kind, rows [][]string, maxCols int, cfg classify.Config) Result {
	switch kind {
	case classify.KindSplitRow:
		return SplitRows(rows, maxCols, cfg)
	case classify.KindSpanningHeader:
		return SpanningHeader(rows, maxCols, cfg)
	case classify.KindMultilineHeader:
		return MultilineHeader(rows, maxCols, cfg)
	case classify.KindWikipedia:
		return Wikipedia(rows, maxCols, cfg)
	default:
		return Plain(rows, maxCols)
	}
}

// Plain pads every row with trailing empty cells to maxCols and leaves cell
// text untouched.
func Plain(rows [][]string, maxCols int) Result {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, pad(row, maxCols))
	}
	return Result{Rows: out, NumCols: maxCols}
}

// CleanResult applies the row cleaner to every cell of an already-built
// result, preserving its shape and header decision.
func CleanResult(res Result) Result {
	out := make([][]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, clean.Row(row))
	}
	res.Rows = out
	return res
}

// pad returns a copy of row with exactly n cells, truncating or padding with
// empty strings as needed.
func pad(row []string, n int) []string {
	out := make([]string, n)
	copy(out, row)
	return out
}
