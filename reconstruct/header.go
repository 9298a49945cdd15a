package reconstruct

import (
	"strings"

	"github.com/rich-iannone/sweet-data-sub000/classify"
)

const (
	// minHeaderVocabHits is how many cells must contain a header-like word
	// for the vocabulary rule to classify row 0 as a header.
	minHeaderVocabHits = 3

	// minHeaderTextRatio is the minimum fraction of non-empty cells that must
	// be textual for the text-vs-numeric rule.
	minHeaderTextRatio = 0.6

	// maxHeaderNumericRatio bounds the numeric share of row 0 in the two-row
	// comparison used on the plain path.
	maxHeaderNumericRatio = 0.5
)

// DetectHeader reports whether the first row of a reconstructed table is a
// header row rather than the first data row. Applied when a strategy did not
// already decide.
func DetectHeader(rows [][]string) bool {
	if len(rows) == 0 {
		return false
	}
	row := rows[0]

	if classify.HeaderWordCount(row) >= minHeaderVocabHits {
		return true
	}

	text, numeric, total := 0, 0, 0
	for _, cell := range row {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		total++
		if classify.IsPurelyNumeric(cell) {
			numeric++
		} else {
			text++
		}
	}
	return total > 0 && text > numeric && float64(text) >= minHeaderTextRatio*float64(total)
}

// DetectHeaderPlain extends DetectHeader for the plain-padding path with a
// two-row comparison: a first row noticeably less numeric than the second is
// taken to be a header.
func DetectHeaderPlain(rows [][]string) bool {
	if DetectHeader(rows) {
		return true
	}
	if len(rows) < 2 {
		return false
	}

	frac0, count0 := numericFraction(rows[0])
	frac1, _ := numericFraction(rows[1])
	width := len(rows[0])
	return width > 0 && frac0 < frac1 &&
		float64(count0) < maxHeaderNumericRatio*float64(width)
}

func numericFraction(row []string) (frac float64, count int) {
	if len(row) == 0 {
		return 0, 0
	}
	for _, cell := range row {
		if classify.IsNumericLooking(cell) {
			count++
		}
	}
	return float64(count) / float64(len(row)), count
}
