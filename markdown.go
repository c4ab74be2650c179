package snudown

import "strings"

var decorationMarkers = map[Decoration]string{
	DecorationBold:          "**",
	DecorationItalic:        "*",
	DecorationStrikethrough: "~~",
}

// Markdown reassembles the node's text run as markdown. Decorations nest
// in source order, links become [text](href), inline code is backquoted
// and spoilers use >!text!<. Non-textual descendants are skipped.
func (d *Document) Markdown(id NodeID) string {
	var sb strings.Builder
	d.writeMarkdown(&sb, id)
	return sb.String()
}

// ParagraphMarkdown reassembles every textual node of p.
func (d *Document) ParagraphMarkdown(p Paragraph) string {
	var sb strings.Builder
	for _, id := range p.Children {
		d.writeMarkdown(&sb, id)
	}
	return sb.String()
}

func (d *Document) writeMarkdown(sb *strings.Builder, id NodeID) {
	n := d.nodes[id]
	switch n.Kind {
	case NodeText, NodeHeader:
		marker := decorationMarkers[n.Decoration]
		sb.WriteString(marker)
		sb.WriteString(n.Text)
		d.writeChildren(sb, n)
		sb.WriteString(marker)
	case NodeLink:
		sb.WriteByte('[')
		sb.WriteString(n.Text)
		d.writeChildren(sb, n)
		sb.WriteString("](")
		sb.WriteString(strings.TrimSpace(n.Href))
		sb.WriteByte(')')
	case NodeInlineCode:
		sb.WriteByte('`')
		sb.WriteString(n.Text)
		sb.WriteByte('`')
	case NodeSpoiler:
		sb.WriteString(">!")
		sb.WriteString(d.SpoilerText(id))
		sb.WriteString("!<")
	}
}

func (d *Document) writeChildren(sb *strings.Builder, n Node) {
	for _, c := range n.Children {
		d.writeMarkdown(sb, c)
	}
}

// PlainText concatenates the text of the node and all its descendants
// without markup.
func (d *Document) PlainText(id NodeID) string {
	var sb strings.Builder
	var walk func(id NodeID)
	walk = func(id NodeID) {
		n := d.nodes[id]
		if n.Kind == NodeList && n.Heading != NoNode {
			walk(n.Heading)
		}
		sb.WriteString(n.Text)
		for _, h := range n.Headers {
			walk(h)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(id)
	return sb.String()
}

// SpoilerText is the text a spoiler displays: the markdown of its textual
// children, or its own text when it has none.
func (d *Document) SpoilerText(id NodeID) string {
	n := d.nodes[id]
	var sb strings.Builder
	textual := false
	for _, c := range n.Children {
		if d.nodes[c].Kind.IsTextual() {
			textual = true
			d.writeMarkdown(&sb, c)
		}
	}
	if !textual {
		return n.Text
	}
	return sb.String()
}
