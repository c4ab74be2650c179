package snudown

// rewriter copies nodes from a source Document into a fresh arena, letting a
// transform replace or drop nodes on the way. The source is never modified.
type rewriter struct {
	src    *Document
	dst    arena
	visit  func(n Node) (NodeID, bool)
	halted bool // set by a visit func to stop after the current paragraph
}

func newRewriter(src *Document) *rewriter {
	return &rewriter{src: src}
}

// copy rewrites the source node id and returns its id in the new arena.
func (r *rewriter) copy(id NodeID) (NodeID, bool) {
	n := r.src.nodes[id]
	if r.visit != nil {
		return r.visit(n)
	}
	return r.clone(n)
}

func (r *rewriter) copyAll(ids []NodeID) []NodeID {
	var out []NodeID
	for _, id := range ids {
		if nid, ok := r.copy(id); ok {
			out = append(out, nid)
		}
	}
	return out
}

// clone copies n into the new arena after rewriting its references.
// Headings and headers are copied before children to keep document order.
func (r *rewriter) clone(n Node) (NodeID, bool) {
	if n.Kind == NodeList && n.Heading != NoNode {
		h, ok := r.copy(n.Heading)
		if !ok {
			h = NoNode
		}
		n.Heading = h
	}
	n.Headers = r.copyAll(n.Headers)
	n.Children = r.copyAll(n.Children)
	return r.dst.add(n), true
}

// document rewrites every paragraph. Blank markers are kept; a paragraph
// whose nodes were all dropped is removed.
func (r *rewriter) document() *Document {
	var paras []Paragraph
	for _, p := range r.src.Paragraphs {
		if r.halted {
			break
		}
		if p.IsBlank() {
			paras = append(paras, Paragraph{})
			continue
		}
		children := r.copyAll(p.Children)
		if len(children) == 0 {
			continue
		}
		paras = append(paras, Paragraph{Children: children})
	}
	return r.dst.document(paras)
}

// WithoutTables returns a copy of d with every table removed.
func (d *Document) WithoutTables() *Document {
	r := newRewriter(d)
	r.visit = func(n Node) (NodeID, bool) {
		if n.Kind == NodeTable {
			return NoNode, false
		}
		return r.clone(n)
	}
	return r.document()
}

// Prune returns a copy of d without empty textual nodes. A node whose
// children are all pruned is itself pruned if its text is blank.
func (d *Document) Prune() *Document {
	r := newRewriter(d)
	r.visit = func(n Node) (NodeID, bool) {
		if !n.Kind.IsTextual() {
			return r.clone(n)
		}
		n.Children = r.copyAll(n.Children)
		if n.IsEmpty() {
			return NoNode, false
		}
		return r.dst.add(n), true
	}
	return r.document()
}
