package pair

import (
	"github.com/vitalvas/radpair/pkg/dictionary"
	"github.com/vitalvas/radpair/pkg/log"
)

const (
	// DefaultMaxDepth bounds group nesting.
	DefaultMaxDepth = 32

	// DefaultMaxLineLength bounds the length of a parsed line.
	DefaultMaxLineLength = 8192
)

// Option configures a Parser.
type Option func(*Parser)

// WithInternal sets the internal dictionary searched after the main one.
func WithInternal(d *dictionary.Dictionary) Option {
	return func(p *Parser) {
		p.internal = d
	}
}

// WithMaxDepth sets the maximum group nesting depth.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// WithMaxLineLength sets the maximum line length, also used by Reader.
func WithMaxLineLength(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxLine = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}
