package pipeline

import (
	"regexp"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// RedditBaseURL is the site platform links and relative links resolve against.
const RedditBaseURL = "https://www.reddit.com"

// platformLinkPattern matches r/name, u/name and their /r/, /u/ forms.
var platformLinkPattern = regexp.MustCompile(`^/?(r|u)/([A-Za-z0-9][A-Za-z0-9_-]{1,20})`)

type platformLinkParser struct{}

func (s *platformLinkParser) Trigger() []byte {
	return []byte{'r', 'u', '/'}
}

func (s *platformLinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	if pc.IsInLinkLabel() {
		return nil
	}
	// Only at a word boundary, so "bar/baz" and "ru/x" stay text.
	if prev := block.PrecendingCharacter(); !unicode.IsSpace(prev) && prev != '(' {
		return nil
	}

	line, segment := block.PeekLine()
	m := platformLinkPattern.FindSubmatchIndex(line)
	if m == nil {
		return nil
	}

	link := ast.NewLink()
	link.Destination = []byte(RedditBaseURL + "/" + string(line[m[2]:m[3]]) + "/" + string(line[m[4]:m[5]]))
	link.AppendChild(link, ast.NewTextSegment(text.NewSegment(segment.Start, segment.Start+m[1])))
	block.Advance(m[1])
	return link
}

type platformLinks struct{}

// PlatformLinks is a goldmark extension that links r/subreddit and
// u/user mentions.
var PlatformLinks goldmark.Extender = &platformLinks{}

func (e *platformLinks) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(
			util.Prioritized(&platformLinkParser{}, 999),
		),
	)
}
