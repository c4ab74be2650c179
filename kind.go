package snudown

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ElementKind is the semantic category of a compiled HTML element.
// Code is not split into inline and block at this stage.
type ElementKind uint8

// Element kinds, in tag-table order.
const (
	KindNone ElementKind = iota
	KindParagraph
	KindHeader1
	KindHeader2
	KindHeader3
	KindHeader4
	KindHeader5
	KindHeader6
	KindBold
	KindItalic
	KindStrikethrough
	KindSpoiler
	KindLink
	KindCode
	KindOrderedList
	KindUnorderedList
	KindListItem
	KindBlockquote
	KindTable
	KindTableHead
	KindTableBody
	KindTableRow
	KindTableHeaderCell
	KindTableDataCell
)

var elementKindNames = [...]string{
	KindNone:            "none",
	KindParagraph:       "paragraph",
	KindHeader1:         "h1",
	KindHeader2:         "h2",
	KindHeader3:         "h3",
	KindHeader4:         "h4",
	KindHeader5:         "h5",
	KindHeader6:         "h6",
	KindBold:            "bold",
	KindItalic:          "italic",
	KindStrikethrough:   "strikethrough",
	KindSpoiler:         "spoiler",
	KindLink:            "link",
	KindCode:            "code",
	KindOrderedList:     "ordered-list",
	KindUnorderedList:   "unordered-list",
	KindListItem:        "list-item",
	KindBlockquote:      "blockquote",
	KindTable:           "table",
	KindTableHead:       "table-head",
	KindTableBody:       "table-body",
	KindTableRow:        "table-row",
	KindTableHeaderCell: "table-header-cell",
	KindTableDataCell:   "table-data-cell",
}

func (k ElementKind) String() string {
	if int(k) < len(elementKindNames) {
		return elementKindNames[k]
	}
	return "none"
}

// tagKinds maps lowercase tag names to element kinds.
var tagKinds = map[string]ElementKind{
	"p":          KindParagraph,
	"h1":         KindHeader1,
	"h2":         KindHeader2,
	"h3":         KindHeader3,
	"h4":         KindHeader4,
	"h5":         KindHeader5,
	"h6":         KindHeader6,
	"strong":     KindBold,
	"b":          KindBold,
	"em":         KindItalic,
	"i":          KindItalic,
	"del":        KindStrikethrough,
	"s":          KindStrikethrough,
	"strike":     KindStrikethrough,
	"spoiler":    KindSpoiler,
	"a":          KindLink,
	"code":       KindCode,
	"pre":        KindCode,
	"ol":         KindOrderedList,
	"ul":         KindUnorderedList,
	"li":         KindListItem,
	"blockquote": KindBlockquote,
	"table":      KindTable,
	"thead":      KindTableHead,
	"tbody":      KindTableBody,
	"tr":         KindTableRow,
	"th":         KindTableHeaderCell,
	"td":         KindTableDataCell,
}

// spoilerSelector matches the shapes spoilers take in compiled output:
// classed spans from the platform and this module's compiler, and the
// bare tag some renderers emit.
var spoilerSelector = cascadia.MustCompile("span.md-spoiler-text, span.spoiler, spoiler")

// classify returns the kind for a tag name, or KindNone if the tag is not recognised.
func classify(tag string) ElementKind {
	return tagKinds[strings.ToLower(tag)]
}

// classifyNode classifies an element node. Spoilers are matched by
// selector because they are not identified by tag name alone.
func classifyNode(n *html.Node) ElementKind {
	if n == nil || n.Type != html.ElementNode {
		return KindNone
	}
	if spoilerSelector.Match(n) {
		return KindSpoiler
	}
	return classify(n.Data)
}

// mustAlwaysTraverse reports whether children of kind are visited even when
// the element has no child elements. Links and cells carry an attribute in
// inside, so their text has to live in children.
func mustAlwaysTraverse(k ElementKind) bool {
	switch k {
	case KindLink, KindSpoiler, KindTableHeaderCell, KindTableDataCell:
		return true
	}
	return false
}

// headerLevel returns 1..6 for header kinds and 0 otherwise.
func headerLevel(k ElementKind) int {
	if k >= KindHeader1 && k <= KindHeader6 {
		return int(k-KindHeader1) + 1
	}
	return 0
}

// skipsBlankText reports whether whitespace-only text directly inside an
// element of kind k is layout noise from the compiler.
func skipsBlankText(k ElementKind) bool {
	switch k {
	case KindOrderedList, KindUnorderedList, KindBlockquote,
		KindTable, KindTableHead, KindTableBody, KindTableRow:
		return true
	}
	return false
}
