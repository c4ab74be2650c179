package snudown

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// element is the intermediate tree built from one DOM subtree.
// It lives only for the duration of a single Extract call.
type element struct {
	kind     ElementKind
	inside   string // raw text, href for links, alignment token for header cells
	lang     string // fence info string, code only
	children []element
}

// build converts a DOM element into an element tree.
// Unrecognised tags return false and their whole subtree is dropped.
func build(n *html.Node) (element, bool) {
	kind := classifyNode(n)
	if kind == KindNone {
		return element{}, false
	}

	if n.DataAtom == atom.Pre {
		return buildPre(n), true
	}

	el := element{kind: kind}
	if kind == KindCode {
		el.lang = codeLanguage(n)
	}

	if !hasElementChild(n) && !mustAlwaysTraverse(kind) {
		el.inside = rawText(n)
		return el, true
	}

	switch kind {
	case KindLink:
		el.inside = attr(n, "href")
	case KindTableHeaderCell:
		el.inside = cellAlignment(n)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if skipsBlankText(kind) && strings.TrimSpace(c.Data) == "" {
				continue
			}
			el.children = append(el.children, element{kind: KindParagraph, inside: c.Data})
		case html.ElementNode:
			if child, ok := build(c); ok {
				el.children = append(el.children, child)
			}
		}
	}
	return el, true
}

// buildPre extracts a preformatted block. Text is taken verbatim from the
// wrapped code element, or from the pre itself when there is none.
func buildPre(n *html.Node) element {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Code {
			return element{kind: KindCode, inside: rawText(c), lang: codeLanguage(c)}
		}
	}
	return element{kind: KindCode, inside: rawText(n)}
}

// buildFlatChildren parses a serialized block and returns its top-level
// elements. A lone paragraph wrapping further children is unwrapped.
func buildFlatChildren(fragment string) ([]element, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFragmentParse, err)
	}

	var out []element
	for _, n := range nodes {
		switch n.Type {
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				out = append(out, element{kind: KindParagraph, inside: n.Data})
			}
		case html.ElementNode:
			if el, ok := build(n); ok {
				out = append(out, el)
			}
		}
	}

	if len(out) == 1 && out[0].kind == KindParagraph && len(out[0].children) > 0 {
		return out[0].children, nil
	}
	return out, nil
}

func hasElementChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
	}
	return false
}

// rawText concatenates every descendant text node without normalizing whitespace.
func rawText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				sb.WriteString(c.Data)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// cellAlignment reads the align attribute, falling back to an inline
// text-align declaration.
func cellAlignment(n *html.Node) string {
	if v := attr(n, "align"); v != "" {
		return strings.ToLower(strings.TrimSpace(v))
	}
	for _, decl := range strings.Split(attr(n, "style"), ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(prop), "text-align") {
			return strings.ToLower(strings.TrimSpace(val))
		}
	}
	return ""
}

// codeLanguage returns the language from a "language-xxx" class, if any.
func codeLanguage(n *html.Node) string {
	for _, class := range strings.Fields(attr(n, "class")) {
		if lang, ok := strings.CutPrefix(class, "language-"); ok {
			return lang
		}
	}
	return ""
}
