// Package snudown turns Snudown, the markdown dialect used by Reddit, into a
// tree of typed nodes ready for a native renderer.
//
// # Quick Start
//
// Create a parser and parse markdown:
//
//	p, err := snudown.NewParser()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := p.Parse(ctx, "Hello **world**\n\n>!spoiler!<")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, para := range res.Document.Paragraphs {
//	    fmt.Println(res.Document.ParagraphMarkdown(para))
//	}
//
// The result holds the Document and the compiled HTML it was extracted
// from (res.HTML) for debugging.
//
// # Extraction Pipeline
//
// Parsing follows these stages:
//
//  1. Markdown preprocessing (line endings, tight headings, >!spoiler!< syntax)
//  2. Markdown to HTML compilation via Goldmark (tables, strikethrough, r/ and u/ links)
//  3. Element classification: each tag maps to a closed set of kinds
//  4. Flat element building: one intermediate tree per top-level block
//  5. Node synthesis through a per-kind policy table
//  6. Paragraph segmentation, with blank-line markers between blocks
//
// Stages 3 to 6 are exposed on their own as Extract, which accepts compiled
// HTML from any source. Extract never fails: blocks it cannot process are
// skipped and the worst case is an empty Document.
//
// # Documents
//
// A Document is an immutable arena of nodes addressed by NodeID, plus the
// ordered paragraphs referencing them. A paragraph with no children is a
// blank-line marker. Every node has a Kind; the fields that apply to each
// kind are listed on Node.
//
// Nodes fall into two classes. Text-class nodes (text, link, header) are
// runs a renderer flows together; view-class nodes (code, lists, quotes,
// tables, spoilers) stand alone.
//
// # Transforms
//
// Transforms never modify their receiver. Each returns a new Document with
// regenerated ids:
//
//	d = d.WithoutTables()     // drop tables
//	d = d.Prune()             // drop whitespace-only text
//	d = d.DecorateLists()     // prefix items with "• " or "N. "
//	d, cut := d.Truncate(280) // keep at most 280 runes of text
//
// Parser applies them in that order according to its options:
//
//	p, err := snudown.NewParser(
//	    snudown.WithMaxCharacters(280),
//	    snudown.WithHideTables(true),
//	    snudown.WithPruneEmpty(true),
//	)
//
// # Platform Payloads
//
// Comment and post bodies fetched from the platform API arrive as
// entity-escaped HTML wrapped in <div class="md">. ParseRedditHTML unescapes,
// unwraps and sanitizes them, resolves site-relative links against
// https://www.reddit.com, and extracts the result.
//
// # Rendering Helpers
//
// Markdown and ParagraphMarkdown reassemble text runs with their
// decorations nested in source order. PlainText strips markup. Blocks
// converts the arena into nested Block values for JSON or YAML encoding.
// IsImageURL and CodeLanguage classify links and code blocks.
//
// # Tracing
//
// Diagnostics go through the schuko tracer selected by TraceKey. Dropped
// blocks and malformed tables are reported at debug level.
package snudown
