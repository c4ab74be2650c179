package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// MarkdownCompiler abstracts Snudown to HTML compilation.
type MarkdownCompiler interface {
	Compile(ctx context.Context, markdown string) (string, error)
}

// GoldmarkCompiler compiles Snudown to an HTML fragment using goldmark (pure Go).
type GoldmarkCompiler struct {
	pre MarkdownPreprocessor
	md  goldmark.Markdown
}

// NewGoldmarkCompiler creates a GoldmarkCompiler with the Snudown feature set.
func NewGoldmarkCompiler() *GoldmarkCompiler {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.NewTable(
				// align="..." on cells, the shape the extractor reads
				extension.WithTableCellAlignMethod(extension.TableCellAlignAttribute),
			),
			extension.Strikethrough,
			extension.Linkify,
			PlatformLinks, // r/name and u/name
		),
		// Note: html.WithUnsafe() intentionally NOT used. Raw HTML in
		// user markdown is omitted; spoilers use placeholders instead.
	)
	return &GoldmarkCompiler{pre: &SnudownPreprocessor{}, md: md}
}

// Compile converts markdown into a trimmed HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkCompiler) Compile(ctx context.Context, markdown string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content := c.pre.PreprocessMarkdown(ctx, markdown)

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		html := strings.TrimSpace(ConvertSpoilerPlaceholders(buf.String()))
		tracer().Debugf("compiled %d bytes of markdown into %d bytes of HTML", len(markdown), len(html))
		done <- result{html: html}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
