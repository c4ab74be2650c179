package snudown

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// DetectLanguage guesses the programming language of code from its content.
// It returns "" when no lexer recognises it.
func DetectLanguage(code string) string {
	l := lexers.Analyse(code)
	if l == nil {
		return ""
	}
	return strings.ToLower(l.Config().Name)
}

// CodeLanguage returns the language of a code block: the fence info string
// normalised through the lexer registry, or a content-based guess when the
// fence named none.
func (d *Document) CodeLanguage(id NodeID) string {
	n := d.nodes[id]
	if n.Kind != NodeCodeBlock {
		return ""
	}
	if n.Language == "" {
		return DetectLanguage(n.Text)
	}
	if l := lexers.Get(n.Language); l != nil {
		return strings.ToLower(l.Config().Name)
	}
	return n.Language
}
