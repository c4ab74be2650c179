package snudown

import (
	"strconv"
	"strings"
)

// DecorateLists returns a copy of d whose list items carry their bullet or
// ordinal indicator. An item with no text of its own that wraps a nested
// list is replaced by that list, with the item's leading text hoisted into
// the list heading. Lists already decorated are copied unchanged, so
// applying DecorateLists twice equals applying it once.
func (d *Document) DecorateLists() *Document {
	r := newRewriter(d)
	r.visit = func(n Node) (NodeID, bool) {
		if n.Kind != NodeList || n.Decorated {
			return r.clone(n)
		}
		heading := NoNode
		if n.Heading != NoNode {
			heading, _ = r.copy(n.Heading)
		}
		return r.decorateList(n, heading), true
	}
	return r.document()
}

func indicator(ordered bool, i int) string {
	if ordered {
		return strconv.Itoa(i+1) + ". "
	}
	return "• "
}

func (r *rewriter) decorateList(n Node, heading NodeID) NodeID {
	items := make([]NodeID, 0, len(n.Children))
	for i, id := range n.Children {
		if item, ok := r.decorateItem(r.src.nodes[id], indicator(n.Ordered, i)); ok {
			items = append(items, item)
		}
	}
	list := newNode(NodeList)
	list.Ordered = n.Ordered
	list.Heading = heading
	list.Decorated = true
	list.Children = items
	return r.dst.add(list)
}

func (r *rewriter) decorateItem(item Node, ind string) (NodeID, bool) {
	if item.Kind != NodeText {
		return r.copy(item.ID)
	}

	if item.Text != "" {
		item.Text = ind + item.Text
		return r.clone(item)
	}

	sub, ok := r.firstChild(item, NodeList)
	if !ok {
		marker := newNode(NodeText)
		marker.Text = ind
		item.Children = append([]NodeID{r.dst.add(marker)}, r.copyAll(item.Children)...)
		return r.dst.add(item), true
	}

	heading := newNode(NodeText)
	heading.Text, heading.Decoration = r.hoistedHeading(item, sub.ID)
	heading.Text = ind + heading.Text
	return r.decorateList(sub, r.dst.add(heading)), true
}

// hoistedHeading joins the plain text of the textual children that precede
// the nested list and strips exactly one trailing newline. A single
// decorated child keeps its decoration.
func (r *rewriter) hoistedHeading(item Node, sub NodeID) (string, Decoration) {
	var (
		sb    strings.Builder
		dec   Decoration
		count int
	)
	for _, id := range item.Children {
		if id == sub {
			break
		}
		c := r.src.nodes[id]
		if !c.Kind.IsTextual() {
			continue
		}
		sb.WriteString(r.src.PlainText(id))
		dec = c.Decoration
		count++
	}
	if count != 1 {
		dec = DecorationNone
	}
	text, _ := strings.CutSuffix(sb.String(), "\n")
	return text, dec
}

func (r *rewriter) firstChild(n Node, kind NodeKind) (Node, bool) {
	for _, id := range n.Children {
		if c := r.src.nodes[id]; c.Kind == kind {
			return c, true
		}
	}
	return Node{}, false
}
