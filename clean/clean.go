// Package clean normalizes individual cell values recovered from clipboard
// text: footnote markers are stripped, Unicode minus signs become ASCII
// hyphens, and invisible format characters picked up from web copies are
// removed. Structural work (padding, merging) belongs to the reconstruction
// strategies; this package never changes the shape of a row.
package clean

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// footnoteRe matches bracketed footnote markers appended by source pages:
// single reference letters ([a]), reference numbers ([12]), and the
// "[citation needed]" tag. Unit annotations such as "[tonnes]" or "[m (ft)]"
// are not footnotes and must survive cleaning, so the bracket content is
// matched narrowly.
var footnoteRe = regexp.MustCompile(`\[(?:[a-zA-Z]|[0-9]+|citation needed|needs update)\]`)

// formatChars removes Unicode format characters (zero-width spaces,
// direction marks) that browsers embed in copied table text.
var formatChars = runes.Remove(runes.In(unicode.Cf))

var minusReplacer = strings.NewReplacer(
	"−", "-", // Unicode minus
	" ", " ", // no-break space
)

// Footnotes removes bracketed footnote markers from s.
func Footnotes(s string) string {
	return footnoteRe.ReplaceAllString(s, "")
}

// Cell normalizes a single cell value: format characters and footnote
// markers are removed, the Unicode minus becomes an ASCII hyphen, and the
// result is trimmed.
func Cell(s string) string {
	if s == "" {
		return s
	}
	cleaned, _, err := transform.String(formatChars, s)
	if err != nil {
		cleaned = s
	}
	cleaned = minusReplacer.Replace(cleaned)
	cleaned = Footnotes(cleaned)
	return strings.TrimSpace(cleaned)
}

// Row returns a new slice with every cell of row passed through Cell.
func Row(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = Cell(cell)
	}
	return out
}
