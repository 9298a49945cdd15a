package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rich-iannone/sweet-data-sub000/model"
)

// render writes tbl to w in the requested format.
func render(w io.Writer, tbl *model.Table, format string) error {
	switch format {
	case "csv":
		return tbl.ToCSV(w)
	case "json":
		return renderJSON(w, tbl)
	case "md", "markdown":
		_, err := fmt.Fprint(w, tbl.ToMarkdown())
		return err
	case "table":
		return renderPretty(w, tbl)
	default:
		return fmt.Errorf("invalid output format %q (must be table, csv, json, or markdown)", format)
	}
}

func renderPretty(w io.Writer, tbl *model.Table) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	if header := tbl.Header(); header != nil {
		headerRow := make(table.Row, len(header))
		for i, cell := range header {
			headerRow[i] = cell
		}
		t.AppendHeader(headerRow)
	}

	for _, row := range tbl.DataRows() {
		prettyRow := make(table.Row, len(row))
		for i, cell := range row {
			prettyRow[i] = cell
		}
		t.AppendRow(prettyRow)
	}

	t.Render()
	return nil
}

func renderJSON(w io.Writer, tbl *model.Table) error {
	out := struct {
		Headers        []string   `json:"headers,omitempty"`
		Rows           [][]string `json:"rows"`
		NumRows        int        `json:"num_rows"`
		NumCols        int        `json:"num_cols"`
		Separator      string     `json:"separator"`
		WikipediaStyle bool       `json:"is_wikipedia_style"`
	}{
		Headers:        tbl.Header(),
		Rows:           tbl.DataRows(),
		NumRows:        tbl.NumRows,
		NumCols:        tbl.NumCols,
		Separator:      tbl.Separator.String(),
		WikipediaStyle: tbl.WikipediaStyle,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
