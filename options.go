package sweetdata

import (
	"github.com/rich-iannone/sweet-data-sub000/classify"
	"github.com/rich-iannone/sweet-data-sub000/model"
)

// parseOptions holds configuration for a parse.
type parseOptions struct {
	// Overrides supplied by the caller; nil means "decide heuristically".
	separator  *model.Separator
	hasHeaders *bool

	// cleanPlain applies the row cleaner even on the plain path, which
	// otherwise leaves cell text byte-identical.
	cleanPlain bool

	config classify.Config
}

// defaultOptions returns the default parse options.
func defaultOptions() parseOptions {
	return parseOptions{
		separator:  nil,
		hasHeaders: nil,
		cleanPlain: false,
		config:     classify.DefaultConfig(),
	}
}

// clone creates a copy of parseOptions with fresh pointer fields.
func (o parseOptions) clone() parseOptions {
	newOpts := o
	if o.separator != nil {
		sep := *o.separator
		newOpts.separator = &sep
	}
	if o.hasHeaders != nil {
		hh := *o.hasHeaders
		newOpts.hasHeaders = &hh
	}
	return newOpts
}
