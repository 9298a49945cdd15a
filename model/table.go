package model

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table represents a reconstructed table with cells organized in rows and
// columns. Every row holds exactly NumCols cells.
type Table struct {
	Rows       [][]string
	HasHeaders bool
	Separator  Separator
	NumRows    int
	NumCols    int

	// WikipediaStyle reports that footnote, unit, or irregular-structure
	// heuristics fired during reconstruction.
	WikipediaStyle bool
}

// NewTable creates an empty table with the given dimensions.
func NewTable(rows, cols int) *Table {
	t := &Table{
		Rows:    make([][]string, rows),
		NumRows: rows,
		NumCols: cols,
	}
	for i := range t.Rows {
		t.Rows[i] = make([]string, cols)
	}
	return t
}

// RowCount returns the number of rows, including any header row.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	return t.NumCols
}

// GetCell returns the cell at the given row and column (0-indexed), or ""
// when the position is out of bounds.
func (t *Table) GetCell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// SetCell sets the cell at the given position.
func (t *Table) SetCell(row, col int, value string) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	t.Rows[row][col] = value
	return nil
}

// Header returns the header row, or nil when the table has no header row.
func (t *Table) Header() []string {
	if !t.HasHeaders || len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// DataRows returns the rows excluding any header row.
func (t *Table) DataRows() [][]string {
	if t.HasHeaders && len(t.Rows) > 0 {
		return t.Rows[1:]
	}
	return t.Rows
}

// ToMarkdown converts the table to markdown format. When the table has no
// header row, a synthetic blank header is emitted so the markdown renders.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	header := t.Rows[0]
	body := t.Rows[1:]
	if !t.HasHeaders {
		header = make([]string, t.NumCols)
		body = t.Rows
	}

	for _, cell := range header {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")

	for j := 0; j < t.NumCols; j++ {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	for _, row := range body {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}

// ToCSV writes the table to w in CSV format, header row included when present.
func (t *Table) ToCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
