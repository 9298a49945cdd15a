package sweetdata

import (
	"github.com/rich-iannone/sweet-data-sub000/classify"
	"github.com/rich-iannone/sweet-data-sub000/clip"
	"github.com/rich-iannone/sweet-data-sub000/model"
	"github.com/rich-iannone/sweet-data-sub000/reconstruct"
)

// Parser provides a fluent interface for reconstructing a table from
// clipboard text. Each configuration method returns a new Parser instance,
// making chains safe to share and reuse.
type Parser struct {
	text    string
	err     error
	options parseOptions
}

// clone creates a copy of the Parser with a deep copy of options, so each
// chain method returns an independent instance.
func (p *Parser) clone() *Parser {
	return &Parser{
		text:    p.text,
		err:     p.err,
		options: p.options.clone(),
	}
}

// Separator overrides delimiter detection. Callers that know the paste
// format (a spreadsheet export, a CSV snippet) can skip the sniffing.
func (p *Parser) Separator(sep model.Separator) *Parser {
	newP := p.clone()
	newP.options.separator = &sep
	return newP
}

// HasHeaders overrides header detection. The original application asks the
// user after previewing; this is the hook for that choice.
func (p *Parser) HasHeaders(has bool) *Parser {
	newP := p.clone()
	newP.options.hasHeaders = &has
	return newP
}

// CleanCells enables cell cleaning (footnote markers, Unicode minus) on the
// plain path too. Wikipedia-classified pastes are always cleaned; a plain
// spreadsheet paste round-trips untouched unless this is set.
func (p *Parser) CleanCells(on bool) *Parser {
	newP := p.clone()
	newP.options.cleanPlain = on
	return newP
}

// Config replaces the heuristic threshold configuration.
func (p *Parser) Config(cfg classify.Config) *Parser {
	newP := p.clone()
	newP.options.config = cfg
	return newP
}

// Table runs the reconstruction pipeline and returns the recovered table.
// It returns ErrNoTabularData when the input has no recognizable tabular
// structure; it never panics on malformed input.
func (p *Parser) Table() (*model.Table, error) {
	if p.err != nil {
		return nil, p.err
	}
	cfg := p.options.config

	lines := clip.FilterLines(p.text)
	if len(lines) == 0 {
		return nil, ErrNoTabularData
	}

	sep := model.SepNone
	if p.options.separator != nil {
		sep = *p.options.separator
	} else {
		detected, ok := clip.DetectSeparator(lines)
		if !ok {
			return nil, ErrNoTabularData
		}
		sep = detected
	}

	rows, maxCols := clip.Tokenize(lines, sep)
	if maxCols == 0 {
		return nil, ErrNoTabularData
	}

	kind := classify.Classify(rows, maxCols, cfg)
	res := p.applyStrategy(kind, rows, maxCols)
	if p.options.cleanPlain && kind == classify.KindPlain {
		res = reconstruct.CleanResult(res)
	}

	hasHeaders := false
	switch {
	case p.options.hasHeaders != nil:
		hasHeaders = *p.options.hasHeaders
	case res.HeaderDecided:
		hasHeaders = res.HasHeaders
	case kind == classify.KindPlain:
		hasHeaders = reconstruct.DetectHeaderPlain(res.Rows)
	default:
		hasHeaders = reconstruct.DetectHeader(res.Rows)
	}

	return &model.Table{
		Rows:           res.Rows,
		HasHeaders:     hasHeaders,
		Separator:      sep,
		NumRows:        len(res.Rows),
		NumCols:        res.NumCols,
		WikipediaStyle: isWikipediaKind(kind),
	}, nil
}

// applyStrategy runs the selected reconstruction strategy, falling back to
// plain padding if the strategy panics. Strategies operate on shared
// heuristics over adversarial input; a misfire must degrade the result, not
// abort the paste.
func (p *Parser) applyStrategy(kind classify.Kind, rows [][]string, maxCols int) (res reconstruct.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = reconstruct.Plain(rows, maxCols)
		}
	}()
	return reconstruct.Apply(kind, rows, maxCols, p.options.config)
}

func isWikipediaKind(kind classify.Kind) bool {
	switch kind {
	case classify.KindSpanningHeader, classify.KindMultilineHeader, classify.KindWikipedia:
		return true
	default:
		return false
	}
}
