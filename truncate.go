package snudown

// Ellipsis is appended to the text node where truncation cut.
const Ellipsis = "…"

// Truncate returns a copy of d holding at most max runes of node text,
// counted in document order. The node where the budget runs out is cut and
// suffixed with Ellipsis; everything after it is dropped. When the budget
// ends exactly on a node boundary and text follows, the last kept text node
// carries the Ellipsis instead. The second result reports whether anything
// was cut. A max of zero or less disables truncation.
func (d *Document) Truncate(max int) (*Document, bool) {
	if max <= 0 {
		return d, false
	}

	remaining := max
	cut, atBoundary := false, false
	lastText := NoNode // source id of the last fully kept text
	kept := make(map[NodeID]NodeID)

	r := newRewriter(d)
	r.visit = func(n Node) (NodeID, bool) {
		if cut {
			return NoNode, false
		}
		if remaining == 0 && d.hasText(n.ID) {
			cut, atBoundary = true, true
			r.halted = true
			return NoNode, false
		}
		runes := []rune(n.Text)
		if len(runes) <= remaining {
			remaining -= len(runes)
			if len(runes) > 0 {
				lastText = n.ID
			}
			id, ok := r.clone(n)
			kept[n.ID] = id
			return id, ok
		}
		n.Text = string(runes[:remaining]) + Ellipsis
		n.Children, n.Headers = nil, nil
		if n.Kind == NodeList {
			n.Heading = NoNode
		}
		cut = true
		r.halted = true
		return r.dst.add(n), true
	}
	doc := r.document()

	if atBoundary {
		if id, ok := kept[lastText]; ok {
			doc.nodes[id].Text += Ellipsis
		}
		// Blank markers must not trail the cut.
		for len(doc.Paragraphs) > 0 && doc.Paragraphs[len(doc.Paragraphs)-1].IsBlank() {
			doc.Paragraphs = doc.Paragraphs[:len(doc.Paragraphs)-1]
		}
	}
	return doc, cut
}

// hasText reports whether id or anything below it carries text.
func (d *Document) hasText(id NodeID) bool {
	n := d.nodes[id]
	if n.Text != "" {
		return true
	}
	if n.Kind == NodeList && n.Heading != NoNode && d.hasText(n.Heading) {
		return true
	}
	for _, ids := range [][]NodeID{n.Headers, n.Children} {
		for _, c := range ids {
			if d.hasText(c) {
				return true
			}
		}
	}
	return false
}
