package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// ErrSanitize indicates a body_html payload could not be cleaned.
var ErrSanitize = errors.New("HTML sanitization failed")

// redditPolicy keeps user-generated markup plus the attributes the
// extractor reads: the spoiler class and table cell alignment.
var redditPolicy = newRedditPolicy()

func newRedditPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^(md-spoiler-text|spoiler)$`)).OnElements("span")
	p.AllowAttrs("align").Matching(regexp.MustCompile(`^(left|center|right)$`)).OnElements("th", "td")
	p.AllowElements("spoiler")
	return p
}

// SanitizeRedditHTML prepares a platform body_html payload for extraction.
// Entity-escaped payloads are unescaped, the <div class="md"> container is
// unwrapped and the markup is run through a UGC sanitizer.
func SanitizeRedditHTML(body string) (string, error) {
	content := strings.TrimSpace(body)
	if strings.HasPrefix(content, "&lt;") {
		content = html.UnescapeString(content)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSanitize, err)
	}

	container := doc.Find("div.md").First()
	if container.Length() == 0 {
		container = doc.Find("body")
	}
	inner, err := container.Html()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSanitize, err)
	}

	return strings.TrimSpace(redditPolicy.Sanitize(inner)), nil
}
