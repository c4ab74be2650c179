package snudown

import "strings"

// NodeID addresses a node inside its Document. IDs are dense indexes,
// stable for the lifetime of one Document and regenerated by every transform.
type NodeID int32

// NoNode marks an absent node reference.
const NoNode NodeID = -1

// NodeKind discriminates the node variants.
type NodeKind uint8

const (
	NodeText NodeKind = iota
	NodeLink
	NodeHeader
	NodeSpoiler
	NodeCodeBlock
	NodeInlineCode
	NodeList
	NodeQuote
	NodeTable
	NodeTableRow
	NodeTableHeader
	NodeTableCell
)

var nodeKindNames = [...]string{
	NodeText:        "text",
	NodeLink:        "link",
	NodeHeader:      "header",
	NodeSpoiler:     "spoiler",
	NodeCodeBlock:   "code-block",
	NodeInlineCode:  "inline-code",
	NodeList:        "list",
	NodeQuote:       "quote",
	NodeTable:       "table",
	NodeTableRow:    "table-row",
	NodeTableHeader: "table-header",
	NodeTableCell:   "table-cell",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "unknown"
}

// Class tells a renderer whether a node joins the surrounding text run or
// stands alone.
type Class uint8

const (
	ClassText Class = iota
	ClassView
)

func (c Class) String() string {
	if c == ClassText {
		return "text"
	}
	return "view"
}

// Class returns the rendering class of the kind. Inline code is a view so
// it is never merged into a prose run.
func (k NodeKind) Class() Class {
	switch k {
	case NodeText, NodeLink, NodeHeader:
		return ClassText
	}
	return ClassView
}

// IsTextual reports whether the kind carries a text payload that can be
// reassembled into markdown.
func (k NodeKind) IsTextual() bool {
	switch k {
	case NodeText, NodeLink, NodeHeader, NodeInlineCode:
		return true
	}
	return false
}

// Decoration styles a text node. Combined styles are expressed by nesting.
type Decoration uint8

const (
	DecorationNone Decoration = iota
	DecorationBold
	DecorationItalic
	DecorationStrikethrough
)

func (d Decoration) String() string {
	switch d {
	case DecorationBold:
		return "bold"
	case DecorationItalic:
		return "italic"
	case DecorationStrikethrough:
		return "strikethrough"
	}
	return "none"
}

// Alignment of a table column.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// parseAlignment maps an alignment token to an Alignment; anything
// unrecognised is left.
func parseAlignment(token string) Alignment {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "right":
		return AlignRight
	case "center":
		return AlignCenter
	}
	return AlignLeft
}

// Node is a single entry in a Document arena. ID, Kind and Children are
// common to every variant; the remaining fields are payload and only
// meaningful for the kinds noted.
type Node struct {
	ID       NodeID
	Kind     NodeKind
	Children []NodeID

	Text       string     // text, link, header, spoiler, code block, inline code
	Decoration Decoration // text
	Href       string     // link
	Level      int        // header, 1..6
	Language   string     // code block, from the fence info string
	Ordered    bool       // list
	Heading    NodeID     // list, NoNode unless a parent item was hoisted into it
	Decorated  bool       // list, items already carry indicators
	Headers    []NodeID   // table, table-header nodes
	Alignment  Alignment  // table header
}

// Class returns the rendering class of the node.
func (n Node) Class() Class { return n.Kind.Class() }

// IsEmpty reports whether a textual node has whitespace-only text and no children.
func (n Node) IsEmpty() bool {
	return n.Kind.IsTextual() && strings.TrimSpace(n.Text) == "" && len(n.Children) == 0
}

// Paragraph is one top-level block of output. A paragraph without children
// is a blank-line marker.
type Paragraph struct {
	Children []NodeID
}

// IsBlank reports whether p only reserves vertical space.
func (p Paragraph) IsBlank() bool { return len(p.Children) == 0 }

// Document is the immutable result of extraction: an arena of nodes and the
// ordered paragraphs referencing them.
type Document struct {
	nodes      []Node
	Paragraphs []Paragraph
}

// Node returns the node with the given id. It panics if id is out of range.
func (d *Document) Node(id NodeID) Node {
	return d.nodes[id]
}

// Len returns the number of nodes in the arena.
func (d *Document) Len() int { return len(d.nodes) }

// Walk visits every node reachable from the paragraphs in document order.
// List headings and table headers are visited before children. Returning
// false from fn skips the node's descendants.
func (d *Document) Walk(fn func(n Node, depth int) bool) {
	var visit func(id NodeID, depth int)
	visit = func(id NodeID, depth int) {
		n := d.nodes[id]
		if !fn(n, depth) {
			return
		}
		if n.Kind == NodeList && n.Heading != NoNode {
			visit(n.Heading, depth+1)
		}
		for _, h := range n.Headers {
			visit(h, depth+1)
		}
		for _, c := range n.Children {
			visit(c, depth+1)
		}
	}
	for _, p := range d.Paragraphs {
		for _, id := range p.Children {
			visit(id, 0)
		}
	}
}

// arena accumulates nodes for a Document under construction.
type arena struct {
	nodes []Node
}

func (a *arena) add(n Node) NodeID {
	n.ID = NodeID(len(a.nodes))
	a.nodes = append(a.nodes, n)
	return n.ID
}

// mark and reset discard nodes added by a block that failed half way.
func (a *arena) mark() int { return len(a.nodes) }

func (a *arena) reset(m int) { a.nodes = a.nodes[:m] }

func (a *arena) document(paras []Paragraph) *Document {
	return &Document{nodes: a.nodes, Paragraphs: paras}
}
