// Package htmltable extracts the first HTML table from clipboard content.
//
// Web browsers frequently place a text/html payload on the clipboard when a
// table is copied. This package converts the first <table> element into
// tab-separated text so the regular reconstruction pipeline can consume it.
package htmltable

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoTable indicates the HTML contained no <table> element.
var ErrNoTable = errors.New("no table element found")

// Extract parses HTML from r and returns the first table rendered as
// tab-separated text, one line per table row. Cells spanning multiple
// columns are followed by empty cells so column positions stay aligned.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	table := findTable(doc)
	if table == nil {
		return "", ErrNoTable
	}

	var sb strings.Builder
	for _, row := range tableRows(table) {
		cells := rowCells(row)
		sb.WriteString(strings.Join(cells, "\t"))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// findTable returns the first <table> node in document order.
func findTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTable(c); t != nil {
			return t
		}
	}
	return nil
}

// tableRows collects the <tr> nodes of a table, descending through thead,
// tbody, and tfoot but not into nested tables.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "tr":
				rows = append(rows, c)
			case "thead", "tbody", "tfoot":
				walk(c)
			}
		}
	}
	walk(table)
	return rows
}

// rowCells extracts the text of each td/th in a row, expanding colspan into
// trailing empty cells.
func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		cells = append(cells, nodeText(c))
		for i := 1; i < colspan(c); i++ {
			cells = append(cells, "")
		}
	}
	return cells
}

func colspan(n *html.Node) int {
	for _, attr := range n.Attr {
		if attr.Key != "colspan" {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil && v > 1 {
			return v
		}
	}
	return 1
}

// nodeText returns the concatenated text content of n with runs of
// whitespace collapsed. Line breaks inside a cell become spaces; the cell
// must stay on one physical line of the TSV output.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && (n.Data == "br" || n.Data == "p") {
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
