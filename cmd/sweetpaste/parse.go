package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	sweetdata "github.com/rich-iannone/sweet-data-sub000"
	"github.com/rich-iannone/sweet-data-sub000/model"
)

// parsed pairs a recovered table with the input it came from.
type parsed struct {
	name  string
	table *model.Table
}

// parseInputs parses every named file concurrently, or stdin when no files
// are given. Result order matches argument order.
func parseInputs(args []string, logger *slog.Logger) ([]parsed, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		table, err := parseOne(data)
		if err != nil {
			return nil, err
		}
		logger.Debug("parsed stdin", "rows", table.NumRows, "cols", table.NumCols)
		return []parsed{{name: "stdin", table: table}}, nil
	}

	results := make([]parsed, len(args))
	var g errgroup.Group
	for i, name := range args {
		i, name := i, name
		g.Go(func() error {
			data, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("reading %s: %w", name, err)
			}
			table, err := parseOne(data)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Debug("parsed file", "file", name,
				"rows", table.NumRows, "cols", table.NumCols,
				"headers", table.HasHeaders, "separator", table.Separator.String())
			results[i] = parsed{name: name, table: table}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// parseOne runs one input through the engine with the CLI flags applied.
func parseOne(data []byte) (*model.Table, error) {
	var p *sweetdata.Parser
	if htmlInput {
		p = sweetdata.FromHTML(bytes.NewReader(data))
	} else {
		p = sweetdata.FromString(string(data))
	}

	switch separator {
	case "":
	case "tab":
		p = p.Separator(model.SepTab)
	case "comma":
		p = p.Separator(model.SepComma)
	case "none":
		p = p.Separator(model.SepNone)
	default:
		return nil, fmt.Errorf("invalid separator %q (must be tab, comma, or none)", separator)
	}

	if forceHeaders {
		p = p.HasHeaders(true)
	}
	if noHeaders {
		p = p.HasHeaders(false)
	}
	if cleanCells {
		p = p.CleanCells(true)
	}

	return p.Table()
}
