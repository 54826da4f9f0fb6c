package parsec

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parsec/cursor"
)

type Option func(*Parser)

// WithLogger sends parse tracing to log at debug level.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithRequireEnd makes a parse fail with ErrTrailingInput when the root
// node returns before consuming all input.
func WithRequireEnd() Option {
	return func(p *Parser) {
		p.requireEnd = true
	}
}

// Parser runs a finished parser tree against input strings. It is safe
// to reuse and to share between goroutines.
type Parser struct {
	root       Node
	log        commonlog.Logger
	requireEnd bool
}

func New(root Node, opts ...Option) *Parser {
	p := &Parser{
		root: root,
		log:  commonlog.GetLogger("parsec"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Shape returns the shape of every successful Parse result.
func (p *Parser) Shape() Shape {
	return p.root.Shape()
}

func (p *Parser) Root() Node {
	return p.root
}

// Parse runs the root node over a fresh cursor on input.
func (p *Parser) Parse(input string) (any, error) {
	c := cursor.New(input)
	p.log.Debugf("parse %d bytes as %s", c.Len(), p.root.Shape())

	v, err := p.root.Parse(c)
	if err != nil {
		p.log.Debugf("parse failed at %s: %v", c, err)
		return nil, err
	}
	if p.requireEnd && !c.AtEnd() {
		p.log.Debugf("parse stopped at %s", c)
		return nil, failAt(c.Offset(), ErrTrailingInput)
	}
	p.log.Debugf("parse done at %s", c)
	return v, nil
}

// Parse runs root over input with default options.
func Parse(root Node, input string) (any, error) {
	return New(root).Parse(input)
}
