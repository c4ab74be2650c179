package snudown

import "strings"

// synthFunc turns one element into a node. It returns false when the
// element is dropped from the output.
type synthFunc func(a *arena, el element) (NodeID, bool)

// synthesizers is the synthesis policy, keyed by element kind. Kinds
// without an entry fall back to synthDefault.
var synthesizers map[ElementKind]synthFunc

func init() {
	synthesizers = map[ElementKind]synthFunc{
		KindParagraph:       synthText(DecorationNone),
		KindListItem:        synthText(DecorationNone),
		KindBold:            synthText(DecorationBold),
		KindItalic:          synthText(DecorationItalic),
		KindStrikethrough:   synthText(DecorationStrikethrough),
		KindHeader1:         synthHeader,
		KindHeader2:         synthHeader,
		KindHeader3:         synthHeader,
		KindHeader4:         synthHeader,
		KindHeader5:         synthHeader,
		KindHeader6:         synthHeader,
		KindSpoiler:         synthSpoiler,
		KindLink:            synthLink,
		KindCode:            synthCode,
		KindOrderedList:     synthList(true),
		KindUnorderedList:   synthList(false),
		KindBlockquote:      synthContainer(NodeQuote),
		KindTable:           synthTable,
		KindTableRow:        synthContainer(NodeTableRow),
		KindTableHeaderCell: synthHeaderCell,
		KindTableDataCell:   synthContainer(NodeTableCell),
	}
}

func newNode(kind NodeKind) Node {
	return Node{Kind: kind, Heading: NoNode}
}

// synthesize maps el through the policy table.
func (a *arena) synthesize(el element) (NodeID, bool) {
	fn, ok := synthesizers[el.kind]
	if !ok {
		fn = synthDefault
	}
	return fn(a, el)
}

func (a *arena) synthesizeAll(els []element) []NodeID {
	var ids []NodeID
	for _, el := range els {
		if id, ok := a.synthesize(el); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// synthDefault yields an empty text node for kinds with no policy.
func synthDefault(a *arena, _ element) (NodeID, bool) {
	return a.add(newNode(NodeText)), true
}

// fillText sets the text payload, suppressing it when children hold the runs.
func (a *arena) fillText(n *Node, el element) {
	if len(el.children) > 0 {
		n.Children = a.synthesizeAll(el.children)
		return
	}
	n.Text = el.inside
}

func synthText(dec Decoration) synthFunc {
	return func(a *arena, el element) (NodeID, bool) {
		n := newNode(NodeText)
		n.Decoration = dec
		a.fillText(&n, el)
		return a.add(n), true
	}
}

func synthHeader(a *arena, el element) (NodeID, bool) {
	n := newNode(NodeHeader)
	n.Level = headerLevel(el.kind)
	a.fillText(&n, el)
	return a.add(n), true
}

func synthSpoiler(a *arena, el element) (NodeID, bool) {
	n := newNode(NodeSpoiler)
	a.fillText(&n, el)
	return a.add(n), true
}

func synthLink(a *arena, el element) (NodeID, bool) {
	n := newNode(NodeLink)
	n.Href = strings.TrimSpace(el.inside)
	n.Children = a.synthesizeAll(el.children)
	return a.add(n), true
}

// synthCode splits code on the presence of a newline: multi-line payloads
// are blocks, everything else is inline.
func synthCode(a *arena, el element) (NodeID, bool) {
	if strings.Contains(el.inside, "\n") {
		n := newNode(NodeCodeBlock)
		n.Text = el.inside
		n.Language = el.lang
		return a.add(n), true
	}
	n := newNode(NodeInlineCode)
	n.Text = el.inside
	return a.add(n), true
}

func synthList(ordered bool) synthFunc {
	return func(a *arena, el element) (NodeID, bool) {
		n := newNode(NodeList)
		n.Ordered = ordered
		n.Children = a.synthesizeAll(el.children)
		return a.add(n), true
	}
}

func synthContainer(kind NodeKind) synthFunc {
	return func(a *arena, el element) (NodeID, bool) {
		n := newNode(kind)
		n.Children = a.synthesizeAll(el.children)
		return a.add(n), true
	}
}

func synthHeaderCell(a *arena, el element) (NodeID, bool) {
	n := newNode(NodeTableHeader)
	n.Alignment = parseAlignment(el.inside)
	n.Children = a.synthesizeAll(el.children)
	return a.add(n), true
}

// synthTable requires a head section, a body section and a header row.
// Any other shape drops the table.
func synthTable(a *arena, el element) (NodeID, bool) {
	if len(el.children) < 2 ||
		el.children[0].kind != KindTableHead ||
		el.children[1].kind != KindTableBody {
		tracer().Debugf("snudown: dropping table without head and body sections")
		return NoNode, false
	}
	head := el.children[0]
	if len(head.children) == 0 || head.children[0].kind != KindTableRow {
		tracer().Debugf("snudown: dropping table without header row")
		return NoNode, false
	}

	n := newNode(NodeTable)
	for _, cell := range head.children[0].children {
		if cell.kind != KindTableHeaderCell {
			continue
		}
		if id, ok := a.synthesize(cell); ok {
			n.Headers = append(n.Headers, id)
		}
	}
	for _, row := range el.children[1].children {
		if row.kind != KindTableRow {
			continue
		}
		if id, ok := a.synthesize(row); ok {
			n.Children = append(n.Children, id)
		}
	}
	return a.add(n), true
}
