// Package sweetdata provides a fluent API for reconstructing tabular
// structure from raw clipboard text.
//
// Text copied from spreadsheets, web pages, and Wikipedia-style HTML tables
// is adversarial: logical rows split across physical lines, headers spread
// over several lines with inconsistent column counts, footnote markers and
// unit annotations embedded in cells. The engine applies structural
// heuristics to recover an ordered, rectangular table with a best-guess
// header row.
//
// Basic usage:
//
//	table, err := sweetdata.FromString(clipboardText).Table()
//	if errors.Is(err, sweetdata.ErrNoTabularData) {
//	    // tell the user nothing tabular was found
//	}
//
// With options:
//
//	table, err := sweetdata.FromString(clipboardText).
//	    Separator(model.SepComma).
//	    HasHeaders(false).
//	    Table()
//
// HTML clipboard payloads go through the same pipeline:
//
//	table, err := sweetdata.FromHTML(strings.NewReader(payload)).Table()
//
// The engine is a pure function of its input: no I/O, no shared state, no
// goroutines. It never panics for malformed input; when a reconstruction
// strategy misbehaves the engine falls back to plain padding, and only truly
// empty input yields [ErrNoTabularData].
package sweetdata

import (
	"errors"
	"io"

	"github.com/rich-iannone/sweet-data-sub000/htmltable"
)

// ErrNoTabularData indicates that no tabular structure could be recovered
// from the input: zero usable lines, or a single line with no delimiter.
var ErrNoTabularData = errors.New("no tabular data found")

// FromString creates a Parser for raw clipboard text.
func FromString(text string) *Parser {
	return &Parser{
		text:    text,
		options: defaultOptions(),
	}
}

// FromHTML creates a Parser for an HTML clipboard payload. The first <table>
// element is converted to tab-separated text and fed through the regular
// pipeline. A payload without a table yields ErrNoTabularData from Table().
func FromHTML(r io.Reader) *Parser {
	text, err := htmltable.Extract(r)
	if errors.Is(err, htmltable.ErrNoTable) {
		err = ErrNoTabularData
	}
	return &Parser{
		text:    text,
		err:     err,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	table := sweetdata.Must(sweetdata.FromString(text).Table())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
