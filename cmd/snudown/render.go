package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	snudown "github.com/alnah/go-snudown"
	"github.com/alnah/go-snudown/internal/config"
	"github.com/alnah/go-snudown/internal/yamlutil"
)

// render writes doc to w in the given output format.
func render(w io.Writer, format string, doc *snudown.Document) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(doc.Blocks())
	case config.OutputYAML:
		return yamlutil.Encode(w, doc.Blocks())
	case config.OutputMarkdown:
		_, err := io.WriteString(w, renderMarkdown(doc))
		return err
	case config.OutputTree, "":
		_, err := io.WriteString(w, renderTree(doc))
		return err
	default:
		return fmt.Errorf("%w: output format %q", config.ErrInvalidValue, format)
	}
}

// ---------------------------------------------------------------------------
// Tree
// ---------------------------------------------------------------------------

// renderTree dumps one line per node, indented by depth. Blank-line
// markers print as "blank".
func renderTree(doc *snudown.Document) string {
	var sb strings.Builder
	for i, p := range doc.Paragraphs {
		if p.IsBlank() {
			sb.WriteString("blank\n")
			continue
		}
		fmt.Fprintf(&sb, "paragraph %d\n", i)
		for _, id := range p.Children {
			writeTreeNode(&sb, doc, id, 1, "")
		}
	}
	return sb.String()
}

func writeTreeNode(sb *strings.Builder, doc *snudown.Document, id snudown.NodeID, depth int, role string) {
	n := doc.Node(id)
	sb.WriteString(strings.Repeat("  ", depth))
	if role != "" {
		sb.WriteString(role)
		sb.WriteByte(' ')
	}
	sb.WriteString(n.Kind.String())

	switch n.Kind {
	case snudown.NodeText:
		if n.Decoration != snudown.DecorationNone {
			sb.WriteString(" " + n.Decoration.String())
		}
	case snudown.NodeLink:
		fmt.Fprintf(sb, " href=%q", n.Href)
		if n.IsImage() {
			sb.WriteString(" image")
		}
	case snudown.NodeHeader:
		fmt.Fprintf(sb, " level=%d", n.Level)
	case snudown.NodeCodeBlock:
		if lang := doc.CodeLanguage(id); lang != "" {
			fmt.Fprintf(sb, " lang=%s", lang)
		}
	case snudown.NodeList:
		if n.Ordered {
			sb.WriteString(" ordered")
		}
	case snudown.NodeTableHeader:
		fmt.Fprintf(sb, " align=%s", n.Alignment)
	}
	if n.Text != "" {
		fmt.Fprintf(sb, " %q", n.Text)
	}
	sb.WriteByte('\n')

	if n.Kind == snudown.NodeList && n.Heading != snudown.NoNode {
		writeTreeNode(sb, doc, n.Heading, depth+1, "heading")
	}
	for _, h := range n.Headers {
		writeTreeNode(sb, doc, h, depth+1, "")
	}
	for _, c := range n.Children {
		writeTreeNode(sb, doc, c, depth+1, "")
	}
}

// ---------------------------------------------------------------------------
// Markdown
// ---------------------------------------------------------------------------

// renderMarkdown reassembles the document as Snudown. Paragraphs are
// separated by one empty line; blank-line markers add nothing.
func renderMarkdown(doc *snudown.Document) string {
	var parts []string
	for _, p := range doc.Paragraphs {
		if p.IsBlank() {
			continue
		}
		parts = append(parts, markdownParagraph(doc, p))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// markdownParagraph joins runs of textual nodes into lines and renders each
// view node as its own block.
func markdownParagraph(doc *snudown.Document, p snudown.Paragraph) string {
	var blocks []string
	var line strings.Builder
	flush := func() {
		if line.Len() > 0 {
			blocks = append(blocks, line.String())
			line.Reset()
		}
	}
	for _, id := range p.Children {
		n := doc.Node(id)
		if n.Kind == snudown.NodeHeader {
			flush()
			blocks = append(blocks, strings.Repeat("#", n.Level)+" "+doc.Markdown(id))
			continue
		}
		if n.Kind.IsTextual() || n.Kind == snudown.NodeSpoiler {
			line.WriteString(doc.Markdown(id))
			continue
		}
		flush()
		blocks = append(blocks, markdownBlock(doc, id))
	}
	flush()
	return strings.Join(blocks, "\n")
}

// markdownBlock renders a view node.
func markdownBlock(doc *snudown.Document, id snudown.NodeID) string {
	n := doc.Node(id)
	switch n.Kind {
	case snudown.NodeCodeBlock:
		return "```" + n.Language + "\n" + strings.TrimSuffix(n.Text, "\n") + "\n```"
	case snudown.NodeList:
		return strings.Join(markdownList(doc, n, 0), "\n")
	case snudown.NodeQuote:
		inner := markdownParagraph(doc, snudown.Paragraph{Children: n.Children})
		lines := strings.Split(inner, "\n")
		for i, l := range lines {
			lines[i] = strings.TrimRight("> "+l, " ")
		}
		return strings.Join(lines, "\n")
	case snudown.NodeTable:
		return markdownTable(doc, n)
	default:
		return doc.Markdown(id)
	}
}

// markdownList renders list items one per line. Undecorated items get a
// markdown marker; decorated items already carry their indicator.
func markdownList(doc *snudown.Document, list snudown.Node, indent int) []string {
	pad := strings.Repeat("  ", indent)
	var lines []string
	if list.Heading != snudown.NoNode {
		lines = append(lines, pad+doc.Markdown(list.Heading))
		indent++
		pad += "  "
	}
	for i, c := range list.Children {
		item := doc.Node(c)
		if item.Kind == snudown.NodeList {
			lines = append(lines, markdownList(doc, item, indent)...)
			continue
		}
		marker := ""
		if !list.Decorated {
			marker = "- "
			if list.Ordered {
				marker = fmt.Sprintf("%d. ", i+1)
			}
		}
		var body string
		if item.Kind.IsTextual() || item.Kind == snudown.NodeSpoiler {
			body = doc.Markdown(c)
		} else {
			body = markdownBlock(doc, c)
		}
		lines = append(lines, pad+marker+body)
	}
	return lines
}

var alignmentRules = map[snudown.Alignment]string{
	snudown.AlignLeft:   ":--",
	snudown.AlignCenter: ":-:",
	snudown.AlignRight:  "--:",
}

// markdownTable renders a pipe table.
func markdownTable(doc *snudown.Document, table snudown.Node) string {
	var sb strings.Builder
	row := func(cells []snudown.NodeID) {
		sb.WriteByte('|')
		for _, c := range cells {
			sb.WriteByte(' ')
			sb.WriteString(cellMarkdown(doc, c))
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}

	row(table.Headers)
	sb.WriteByte('|')
	for _, h := range table.Headers {
		sb.WriteString(alignmentRules[doc.Node(h).Alignment])
		sb.WriteByte('|')
	}
	sb.WriteByte('\n')
	for _, r := range table.Children {
		row(doc.Node(r).Children)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func cellMarkdown(doc *snudown.Document, id snudown.NodeID) string {
	var sb strings.Builder
	for _, c := range doc.Node(id).Children {
		sb.WriteString(doc.Markdown(c))
	}
	return strings.ReplaceAll(sb.String(), "|", `\|`)
}
