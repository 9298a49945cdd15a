package classify

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// headerWords are words commonly found in header rows. Matching is
// case-insensitive substring matching per cell.
var headerWords = []string{
	"name", "rank", "title", "height", "floor", "city", "country",
	"year", "comment", "animal", "mass", "length",
}

// spanningRoles are header words that typically span sub-columns on the
// following physical line (e.g. "Writer(s)" over "Story" and "Screenplay").
// Kept as the literal list observed in the corpus; deliberately not
// generalized.
var spanningRoles = []string{"writer", "author", "creator"}

// unitTokens mark cells that carry measurement units rather than data.
var unitTokens = []string{
	"mi2", "km2", "mi²", "km²",
	"/ mi2", "/ km2", "/mi2", "/km2",
	"(ft)", "(m)", "(lb)", "(kg", "(mi", "(km",
	"[tonnes", "[kg", "[lb", "[m (",
	"%",
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
}

var (
	footnoteRe   = regexp.MustCompile(`\[[a-zA-Z0-9]+\]`)
	coordinateRe = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?°\s*[NSEW]`)
	rankRe       = regexp.MustCompile(`^[0-9]{1,4}$|^[0-9]{1,3}\.[0-9]{1,3}$`)
	digitRe      = regexp.MustCompile(`[0-9]`)
)

// IsShortNumeric reports whether s looks like a rank number: a short integer
// or a 1-3 digit decimal.
func IsShortNumeric(s string) bool {
	return rankRe.MatchString(strings.TrimSpace(s))
}

// IsPurelyNumeric reports whether s parses as a number once grouping and sign
// characters (period, comma, hyphen, Unicode minus, plus) are stripped.
func IsPurelyNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	hasDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '.' || r == ',' || r == '-' || r == '+' || r == '−' || r == ' ':
		default:
			return false
		}
	}
	return hasDigit
}

// IsNumericLooking is a looser numeric test that also tolerates percent and
// currency markers, used when comparing the numeric character of two rows.
func IsNumericLooking(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	hasDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '.' || r == ',' || r == '-' || r == '+' || r == '−' || r == ' ':
		case r == '%' || r == '$' || r == '€' || r == '£':
		default:
			return false
		}
	}
	return hasDigit
}

// HasFootnote reports whether s contains a bracketed footnote marker such as
// [a] or [12].
func HasFootnote(s string) bool {
	return footnoteRe.MatchString(s)
}

// HasUnitToken reports whether s contains a known unit annotation.
func HasUnitToken(s string) bool {
	for _, tok := range unitTokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

// HasCoordinate reports whether s contains a degree-and-compass token such as
// "40.66°N".
func HasCoordinate(s string) bool {
	return coordinateRe.MatchString(s)
}

// IsDateLike reports whether s could be the date field of a record: it
// contains a month name or any digit.
func IsDateLike(s string) bool {
	if digitRe.MatchString(s) {
		return true
	}
	lower := strings.ToLower(s)
	for _, m := range monthNames {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// IsUnitSuffix reports whether s is a short bracketed or parenthesized token
// that should be appended to a header cell as a unit, e.g. "[tonnes]" or
// "(ft)".
func IsUnitSuffix(s string, cfg Config) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if s[0] != '[' && s[0] != '(' {
		return false
	}
	return runewidth.StringWidth(s) <= cfg.MaxUnitSuffixWidth
}

// HeaderWordCount returns how many cells contain a known header word.
func HeaderWordCount(row []string) int {
	n := 0
	for _, cell := range row {
		lower := strings.ToLower(cell)
		for _, w := range headerWords {
			if strings.Contains(lower, w) {
				n++
				break
			}
		}
	}
	return n
}

// SpanningRoleIndex returns the index of the first cell in row whose text
// contains a spanning-role word, or -1.
func SpanningRoleIndex(row []string) int {
	for i, cell := range row {
		lower := strings.ToLower(cell)
		for _, role := range spanningRoles {
			if strings.Contains(lower, role) {
				return i
			}
		}
	}
	return -1
}

// CellWidth returns the display width of a cell, so wide runes count the way
// a user sees them.
func CellWidth(s string) int {
	return runewidth.StringWidth(s)
}

// NonEmptyCount returns the number of cells in row that are non-empty after
// trimming.
func NonEmptyCount(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}

// FirstNonEmpty returns the first non-empty cell of row, or "".
func FirstNonEmpty(row []string) string {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return cell
		}
	}
	return ""
}
