package snudown

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-snudown/internal/pipeline"
)

// Compiler turns Snudown markdown into an HTML fragment.
type Compiler interface {
	Compile(ctx context.Context, markdown string) (string, error)
}

// Compile-time interface implementation check.
var _ Compiler = (*pipeline.GoldmarkCompiler)(nil)

// Parser runs the full pipeline: compile, extract, then shape the tree
// according to its options. A Parser holds no per-call state and is safe
// for concurrent use.
type Parser struct {
	compiler      Compiler
	maxCharacters int
	hideTables    bool
	decorateLists bool
	pruneEmpty    bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithCompiler replaces the built-in goldmark compiler.
func WithCompiler(c Compiler) Option {
	return func(p *Parser) {
		p.compiler = c
	}
}

// WithMaxCharacters truncates output to n runes of text. Zero disables truncation.
func WithMaxCharacters(n int) Option {
	return func(p *Parser) {
		p.maxCharacters = n
	}
}

// WithHideTables removes tables from the output.
func WithHideTables(hide bool) Option {
	return func(p *Parser) {
		p.hideTables = hide
	}
}

// WithDecorateLists prefixes list items with their indicator. Enabled by default.
func WithDecorateLists(decorate bool) Option {
	return func(p *Parser) {
		p.decorateLists = decorate
	}
}

// WithPruneEmpty drops whitespace-only text nodes.
func WithPruneEmpty(prune bool) Option {
	return func(p *Parser) {
		p.pruneEmpty = prune
	}
}

// NewParser creates a Parser using the built-in compiler unless overridden.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		compiler:      pipeline.NewGoldmarkCompiler(),
		decorateLists: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.compiler == nil {
		return nil, ErrNilCompiler
	}
	if p.maxCharacters < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxCharacters, p.maxCharacters)
	}
	return p, nil
}

// Result is the output of one parse.
type Result struct {
	Document  *Document
	HTML      string // compiled HTML the document was extracted from
	Truncated bool
}

// Parse compiles markdown and extracts its document.
func (p *Parser) Parse(ctx context.Context, markdown string) (*Result, error) {
	if strings.TrimSpace(markdown) == "" {
		return nil, ErrEmptyInput
	}
	compiled, err := p.compiler.Compile(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	return p.ParseHTML(ctx, compiled)
}

// ParseHTML extracts a document from already compiled HTML.
func (p *Parser) ParseHTML(ctx context.Context, compiled string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(compiled) == "" {
		return nil, ErrEmptyInput
	}
	tracer().Debugf("snudown: extracting %d bytes of HTML", len(compiled))

	res := &Result{HTML: compiled, Document: Extract(compiled)}
	if p.hideTables {
		res.Document = res.Document.WithoutTables()
	}
	if p.pruneEmpty {
		res.Document = res.Document.Prune()
	}
	if p.decorateLists {
		res.Document = res.Document.DecorateLists()
	}
	res.Document, res.Truncated = res.Document.Truncate(p.maxCharacters)
	return res, nil
}

// ParseRedditHTML extracts a document from a platform body_html payload,
// which may be entity-escaped and wrapped in a container div.
func (p *Parser) ParseRedditHTML(ctx context.Context, bodyHTML string) (*Result, error) {
	if strings.TrimSpace(bodyHTML) == "" {
		return nil, ErrEmptyInput
	}
	clean, err := pipeline.SanitizeRedditHTML(bodyHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSanitize, err)
	}
	clean, err = pipeline.RewriteRelativeLinks(clean, pipeline.RedditBaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSanitize, err)
	}
	return p.ParseHTML(ctx, clean)
}
