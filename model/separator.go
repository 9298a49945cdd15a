package model

// Separator identifies the cell delimiter used by a pasted table.
type Separator int

const (
	// SepNone indicates single-column input with no recognized delimiter.
	SepNone Separator = iota
	// SepTab indicates tab-delimited cells.
	SepTab
	// SepComma indicates comma-delimited cells.
	SepComma
)

// String returns the string representation of the separator.
func (s Separator) String() string {
	switch s {
	case SepTab:
		return "tab"
	case SepComma:
		return "comma"
	default:
		return "none"
	}
}

// Delim returns the delimiter string, or "" for SepNone.
func (s Separator) Delim() string {
	switch s {
	case SepTab:
		return "\t"
	case SepComma:
		return ","
	default:
		return ""
	}
}
