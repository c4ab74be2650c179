package snudown

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Extract segments compiled Snudown HTML into paragraphs of nodes.
//
// Each element directly under body becomes one paragraph. Text directly
// under body only contributes blank-line markers: one per "\n\n" it
// contains, or a single marker for newline-only whitespace.
//
// Extract never fails. A block that cannot be processed is skipped and an
// input that cannot be parsed at all yields an empty Document.
func Extract(compiledHTML string) (doc *Document) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("snudown: extraction aborted: %v", r)
			doc = &Document{}
		}
	}()

	body, err := parseBody(compiledHTML)
	if err != nil {
		tracer().Errorf("snudown: parsing compiled HTML: %v", err)
		return &Document{}
	}

	var a arena
	var paras []Paragraph
	goquery.NewDocumentFromNode(body).Contents().Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		switch n.Type {
		case html.TextNode:
			paras = append(paras, blankLines(n.Data)...)
		case html.ElementNode:
			if p, ok := a.block(s); ok {
				paras = append(paras, p)
			}
		}
	})
	return a.document(paras)
}

// parseBody parses s as the content of a body element. Whitespace before
// the first element and head-only tags stay in place.
func parseBody(s string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return body, nil
}

// blankLines returns the blank-line markers a body-level text node stands for.
func blankLines(text string) []Paragraph {
	count := strings.Count(text, "\n\n")
	if count == 0 && strings.TrimSpace(text) == "" && strings.Contains(text, "\n") {
		count = 1
	}
	return make([]Paragraph, count)
}

// block converts one body-level element into a paragraph. Failures are
// logged and reported as false; nodes added before the failure are discarded.
func (a *arena) block(s *goquery.Selection) (p Paragraph, ok bool) {
	m := a.mark()
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("snudown: skipping <%s> block: %v", goquery.NodeName(s), r)
			a.reset(m)
			p, ok = Paragraph{}, false
		}
	}()

	fragment, err := goquery.OuterHtml(s)
	if err != nil {
		tracer().Errorf("snudown: serializing <%s> block: %v", goquery.NodeName(s), err)
		return Paragraph{}, false
	}
	els, err := buildFlatChildren(fragment)
	if err != nil {
		tracer().Errorf("snudown: %v", err)
		return Paragraph{}, false
	}

	p.Children = a.synthesizeAll(els)
	if len(p.Children) == 0 {
		tracer().Debugf("snudown: <%s> block produced no nodes", goquery.NodeName(s))
		return Paragraph{}, false
	}
	return p, true
}
