package clip

import (
	"strings"
	"testing"

	"github.com/rich-iannone/sweet-data-sub000/model"
)

func TestFilterLinesDropsCaption(t *testing.T) {
	text := "Highest-grossing films of 2025[12][13]\n" +
		"Rank\tTitle\tGross\n" +
		"1\tNe Zha 2\t$2,217,080,000\n"

	lines := FilterLines(text)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
	}
	if strings.Contains(lines[0], "Highest-grossing") {
		t.Errorf("Caption line survived filtering: %q", lines[0])
	}
}

func TestFilterLinesMultipleCaptions(t *testing.T) {
	text := "Some title\nAnother caption\na\tb\n1\t2\n"

	lines := FilterLines(text)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "a\tb" {
		t.Errorf("First line = %q, expected the header line", lines[0])
	}
}

func TestFilterLinesKeepsRankLines(t *testing.T) {
	// Lone rank lines inside a split-row table have zero tabs but must
	// survive: caption dropping stops at the first delimited line.
	text := "Rank\tCity\tProvince\n1\nToronto\tOntario\n2\nMontreal\tQuebec\n"

	lines := FilterLines(text)
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d: %v", len(lines), lines)
	}
	if lines[1] != "1" {
		t.Errorf("Rank line dropped, lines[1] = %q", lines[1])
	}
}

func TestFilterLinesBlankAndCRLF(t *testing.T) {
	text := "a\tb\r\n\r\n \n1\t2\r\n"

	lines := FilterLines(text)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
	}
	if strings.ContainsRune(lines[0], '\r') {
		t.Errorf("Carriage return survived: %q", lines[0])
	}
}

func TestFilterLinesEmpty(t *testing.T) {
	if lines := FilterLines(""); len(lines) != 0 {
		t.Errorf("Expected no lines for empty input, got %v", lines)
	}
	if lines := FilterLines("\n \n\t\n"); len(lines) != 0 {
		t.Errorf("Expected no lines for blank input, got %v", lines)
	}
}

func TestDetectSeparator(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		sep   model.Separator
		ok    bool
	}{
		{"tabs win", []string{"a\tb,c", "1\t2"}, model.SepTab, true},
		{"commas", []string{"a,b,c", "1,2,3"}, model.SepComma, true},
		{"multi-line prose", []string{"alpha", "beta"}, model.SepNone, true},
		{"single cell", []string{"alpha"}, model.SepNone, false},
		{"no lines", nil, model.SepNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep, ok := DetectSeparator(tt.lines)
			if sep != tt.sep || ok != tt.ok {
				t.Errorf("DetectSeparator(%v) = (%v, %v), expected (%v, %v)",
					tt.lines, sep, ok, tt.sep, tt.ok)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	lines := []string{"a\t b \tc", "1\t2", "solo"}

	rows, maxCols := Tokenize(lines, model.SepTab)
	if maxCols != 3 {
		t.Errorf("maxCols = %d, expected 3", maxCols)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "b" {
		t.Errorf("Cell not trimmed: %q", rows[0][1])
	}
	if len(rows[1]) != 2 {
		t.Errorf("Rows must stay unpadded, row 1 has %d cells", len(rows[1]))
	}
}

func TestTokenizeSingleColumn(t *testing.T) {
	rows, maxCols := Tokenize([]string{"one", "two"}, model.SepNone)
	if maxCols != 1 {
		t.Errorf("maxCols = %d, expected 1", maxCols)
	}
	if rows[0][0] != "one" || rows[1][0] != "two" {
		t.Errorf("Unexpected rows: %v", rows)
	}
}
