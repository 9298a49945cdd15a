// Package reconstruct transforms tokenized clipboard rows into a rectangular
// table, one strategy per [classify.Kind].
//
// # Strategies
//
//   - [SplitRows] - merges lone rank lines with the data line that follows
//   - [SpanningHeader] - expands a spanning header cell into sub-columns and
//     rebuilds the multi-line records beneath it
//   - [MultilineHeader] - merges a header block spread across physical lines
//     into one header row, attaching bracketed unit annotations
//   - [Wikipedia] - builds a synthetic header for irregular tables, or just
//     cleans cells when the structure is already regular
//   - [Plain] - pads every row to the maximum column count, unmodified
//
// Every strategy returns a [Result] whose rows are all padded to
// Result.NumCols. Strategies never mutate their input, so a caller can fall
// back to [Plain] on the original rows if a strategy misbehaves.
//
// # Header detection
//
// Strategies that synthesize a header decide Result.HasHeaders themselves.
// For the rest, [DetectHeader] (or [DetectHeaderPlain] for the plain path)
// examines the final first row.
package reconstruct
