package snudown

// Block is the nested, self-contained form of a node, suited to encoding.
type Block struct {
	Kind       string  `json:"kind" yaml:"kind"`
	Text       string  `json:"text,omitempty" yaml:"text,omitempty"`
	Decoration string  `json:"decoration,omitempty" yaml:"decoration,omitempty"`
	Href       string  `json:"href,omitempty" yaml:"href,omitempty"`
	Image      bool    `json:"image,omitempty" yaml:"image,omitempty"`
	Level      int     `json:"level,omitempty" yaml:"level,omitempty"`
	Language   string  `json:"language,omitempty" yaml:"language,omitempty"`
	Ordered    bool    `json:"ordered,omitempty" yaml:"ordered,omitempty"`
	Alignment  string  `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Heading    *Block  `json:"heading,omitempty" yaml:"heading,omitempty"`
	Headers    []Block `json:"headers,omitempty" yaml:"headers,omitempty"`
	Children   []Block `json:"children,omitempty" yaml:"children,omitempty"`
}

// Blocks returns the document as nested blocks, one slice per paragraph.
// Blank-line markers are empty slices.
func (d *Document) Blocks() [][]Block {
	out := make([][]Block, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		out[i] = make([]Block, 0, len(p.Children))
		for _, id := range p.Children {
			out[i] = append(out[i], d.Block(id))
		}
	}
	return out
}

// Block returns the nested form of the node id.
func (d *Document) Block(id NodeID) Block {
	n := d.nodes[id]
	b := Block{
		Kind: n.Kind.String(),
		Text: n.Text,
	}
	switch n.Kind {
	case NodeText:
		if n.Decoration != DecorationNone {
			b.Decoration = n.Decoration.String()
		}
	case NodeLink:
		b.Href = n.Href
		b.Image = IsImageURL(n.Href)
	case NodeHeader:
		b.Level = n.Level
	case NodeCodeBlock:
		b.Language = d.CodeLanguage(id)
	case NodeList:
		b.Ordered = n.Ordered
		if n.Heading != NoNode {
			h := d.Block(n.Heading)
			b.Heading = &h
		}
	case NodeTableHeader:
		b.Alignment = n.Alignment.String()
	}
	for _, h := range n.Headers {
		b.Headers = append(b.Headers, d.Block(h))
	}
	for _, c := range n.Children {
		b.Children = append(b.Children, d.Block(c))
	}
	return b
}
