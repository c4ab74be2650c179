package pipeline

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// Spoiler placeholders use Unicode Private Use Area characters. They pass
// through Goldmark unchanged and are turned into spoiler spans afterwards,
// so raw HTML never has to be enabled.
const (
	SpoilerStartPlaceholder = "\uE002" // U+E002: Private Use Area
	SpoilerEndPlaceholder   = "\uE003" // U+E003: Private Use Area
)

// Code regions are held out of the text passes behind these markers.
const (
	codeStartPlaceholder = "\uE004" // U+E004: Private Use Area
	codeEndPlaceholder   = "\uE005" // U+E005: Private Use Area
)

// SpoilerClass is the class the platform puts on spoiler spans.
const SpoilerClass = "md-spoiler-text"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Spoiler syntax >!text!<
	spoilerPattern = regexp.MustCompile(`>!(.+?)!<`)

	// ATX heading written without the space: #Heading
	tightHeading = regexp.MustCompile(`^(\s{0,3}#{1,6})([^#\s])`)

	// Opening or closing code fence
	fenceLine = regexp.MustCompile("^\\s{0,3}(```|~~~)")

	// Masked code region
	codePlaceholder = regexp.MustCompile(`\x{E004}\d+\x{E005}`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SnudownPreprocessor rewrites Snudown-only syntax into something a
// CommonMark parser understands.
type SnudownPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for compilation.
func (p *SnudownPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)

	var code codeMask
	content = code.maskFences(content)
	content = code.maskSpans(content)

	content = compressBlankLines(content)
	content = spaceHeadings(content)
	content = convertSpoilers(content)
	return code.restore(content)
}

// codeMask swaps fenced blocks and code spans for numbered placeholders so
// the text passes never rewrite code.
type codeMask struct {
	regions []string
}

func (m *codeMask) hold(region string) string {
	m.regions = append(m.regions, region)
	return codeStartPlaceholder + strconv.Itoa(len(m.regions)-1) + codeEndPlaceholder
}

// maskFences replaces each fenced block, fence lines included, with a
// placeholder line. An unclosed fence runs to the end of the content.
func (m *codeMask) maskFences(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		open := fenceLine.FindStringSubmatch(lines[i])
		if open == nil {
			out = append(out, lines[i])
			continue
		}
		end := len(lines) - 1
		for j := i + 1; j < len(lines); j++ {
			if c := fenceLine.FindStringSubmatch(lines[j]); c != nil && c[1] == open[1] {
				end = j
				break
			}
		}
		out = append(out, m.hold(strings.Join(lines[i:end+1], "\n")))
		i = end
	}
	return strings.Join(out, "\n")
}

// maskSpans replaces backtick code spans. A span closes on the next run of
// the same length and never crosses a blank line; an unmatched run is text.
func (m *codeMask) maskSpans(content string) string {
	var sb strings.Builder
	for i := 0; i < len(content); {
		if content[i] != '`' {
			sb.WriteByte(content[i])
			i++
			continue
		}
		n := backtickRun(content, i)
		end := closingRun(content, i+n, n)
		if end < 0 {
			sb.WriteString(content[i : i+n])
			i += n
			continue
		}
		sb.WriteString(m.hold(content[i : end+n]))
		i = end + n
	}
	return sb.String()
}

func (m *codeMask) restore(content string) string {
	if len(m.regions) == 0 {
		return content
	}
	return codePlaceholder.ReplaceAllStringFunc(content, func(p string) string {
		i, err := strconv.Atoi(p[len(codeStartPlaceholder) : len(p)-len(codeEndPlaceholder)])
		if err != nil || i >= len(m.regions) {
			return p
		}
		return m.regions[i]
	})
}

func backtickRun(s string, i int) int {
	n := 0
	for i+n < len(s) && s[i+n] == '`' {
		n++
	}
	return n
}

// closingRun returns the index of the next run of exactly n backticks at or
// after from, or -1.
func closingRun(s string, from, n int) int {
	for i := from; i < len(s); {
		k := strings.IndexByte(s[i:], '`')
		if k < 0 || strings.Contains(s[from:i+k], "\n\n") {
			return -1
		}
		i += k
		run := backtickRun(s, i)
		if run == n {
			return i
		}
		i += run
	}
	return -1
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// spaceHeadings inserts the space CommonMark requires after heading
// markers. Lines inside fenced code are left alone.
func spaceHeadings(content string) string {
	lines := strings.Split(content, "\n")
	inFence := false
	for i, line := range lines {
		if fenceLine.MatchString(line) {
			inFence = !inFence
			continue
		}
		if !inFence {
			lines[i] = tightHeading.ReplaceAllString(line, "$1 $2")
		}
	}
	return strings.Join(lines, "\n")
}

// convertSpoilers transforms >!text!< to placeholder markers.
// ConvertSpoilerPlaceholders turns them into spans after compilation.
func convertSpoilers(content string) string {
	return spoilerPattern.ReplaceAllString(content, SpoilerStartPlaceholder+"$1"+SpoilerEndPlaceholder)
}

// ConvertSpoilerPlaceholders converts placeholder markers to spoiler spans.
func ConvertSpoilerPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, SpoilerStartPlaceholder, `<span class="`+SpoilerClass+`">`),
		SpoilerEndPlaceholder, "</span>",
	)
}
