package pipeline

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteRelativeLinks resolves site-relative link and image targets
// against base. If base is empty, returns the HTML unchanged.
//
// Rewrites:
//   - a[href]: site-relative paths such as /r/golang
//   - img[src]: site-relative image paths
//
// Does NOT rewrite:
//   - anchors, absolute URLs, protocol-relative and data: URLs
//   - document-relative paths (no document location to resolve against)
func RewriteRelativeLinks(htmlContent, base string) (string, error) {
	if base == "" {
		return htmlContent, nil
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	// Parse HTML - detect if full document or fragment
	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, baseURL)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	nodes, err := html.ParseFragment(strings.NewReader(content), &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode traverses the DOM and resolves site-relative targets.
func rewriteNode(n *html.Node, base *url.URL) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.A:
			rewriteAttr(n, "href", base)
		case atom.Img:
			rewriteAttr(n, "src", base)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, base)
	}
}

func rewriteAttr(n *html.Node, attrName string, base *url.URL) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isSiteRelative(attr.Val) {
			continue
		}
		ref, err := url.Parse(attr.Val)
		if err != nil {
			continue // leave malformed targets untouched
		}
		n.Attr[i].Val = base.ResolveReference(ref).String()
	}
}

// isSiteRelative reports whether target is a path rooted at the site.
func isSiteRelative(target string) bool {
	return strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//")
}
