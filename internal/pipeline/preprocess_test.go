package pipeline

import (
	"context"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"LF unchanged", "line1\nline2", "line1\nline2"},
		{"CRLF to LF", "line1\r\nline2", "line1\nline2"},
		{"CR to LF", "line1\rline2", "line1\nline2"},
		{"mixed line endings", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := normalizeLineEndings(tt.input)
			if got != tt.expected {
				t.Errorf("normalizeLineEndings() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCompressBlankLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single blank line unchanged", "a\n\nb", "a\n\nb"},
		{"three newlines compressed", "a\n\n\nb", "a\n\nb"},
		{"many newlines compressed", "a\n\n\n\n\n\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := compressBlankLines(tt.input)
			if got != tt.expected {
				t.Errorf("compressBlankLines() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSpaceHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tight heading gets space", "#Heading 1", "# Heading 1"},
		{"deeper tight heading", "###Third", "### Third"},
		{"spaced heading unchanged", "# Heading", "# Heading"},
		{"seven hashes untouched", "#######x", "#######x"},
		{"text mid-line untouched", "see #1", "see #1"},
		{
			name:     "inside backtick fence untouched",
			input:    "```\n#include <stdio.h>\n```\n#After",
			expected: "```\n#include <stdio.h>\n```\n# After",
		},
		{
			name:     "inside tilde fence untouched",
			input:    "~~~\n#define X\n~~~",
			expected: "~~~\n#define X\n~~~",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := spaceHeadings(tt.input)
			if got != tt.expected {
				t.Errorf("spaceHeadings(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestConvertSpoilers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single spoiler",
			input:    "a >!secret!< b",
			expected: "a " + SpoilerStartPlaceholder + "secret" + SpoilerEndPlaceholder + " b",
		},
		{
			name:     "two spoilers are not merged",
			input:    ">!x!< and >!y!<",
			expected: SpoilerStartPlaceholder + "x" + SpoilerEndPlaceholder + " and " + SpoilerStartPlaceholder + "y" + SpoilerEndPlaceholder,
		},
		{"unterminated spoiler untouched", ">!open", ">!open"},
		{"empty spoiler untouched", ">!!<", ">!!<"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convertSpoilers(tt.input)
			if got != tt.expected {
				t.Errorf("convertSpoilers(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestConvertSpoilerPlaceholders(t *testing.T) {
	t.Parallel()

	input := "<p>" + SpoilerStartPlaceholder + "x" + SpoilerEndPlaceholder + "</p>"
	want := `<p><span class="md-spoiler-text">x</span></p>`
	if got := ConvertSpoilerPlaceholders(input); got != want {
		t.Errorf("ConvertSpoilerPlaceholders() = %q, want %q", got, want)
	}
}

func TestSnudownPreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	p := &SnudownPreprocessor{}

	t.Run("applies all transformations", func(t *testing.T) {
		t.Parallel()

		got := p.PreprocessMarkdown(context.Background(), "#Title\r\n\r\n\r\n\r\n>!s!<")
		want := "# Title\n\n" + SpoilerStartPlaceholder + "s" + SpoilerEndPlaceholder
		if got != want {
			t.Errorf("PreprocessMarkdown() = %q, want %q", got, want)
		}
	})

	t.Run("cancelled context returns input unchanged", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		input := "#Title\r\n"
		if got := p.PreprocessMarkdown(ctx, input); got != input {
			t.Errorf("PreprocessMarkdown() = %q, want %q", got, input)
		}
	})
}

func TestSnudownPreprocessor_LeavesCodeAlone(t *testing.T) {
	t.Parallel()

	p := &SnudownPreprocessor{}
	spoiler := func(s string) string { return SpoilerStartPlaceholder + s + SpoilerEndPlaceholder }

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "spoiler inside code span",
			input:    "see `a >!x!< b` here",
			expected: "see `a >!x!< b` here",
		},
		{
			name:     "double backtick span",
			input:    "``a ` >!x!<`` >!y!<",
			expected: "``a ` >!x!<`` " + spoiler("y"),
		},
		{
			name:     "spoiler next to code span",
			input:    "`>!a!<` and >!b!<",
			expected: "`>!a!<` and " + spoiler("b"),
		},
		{
			name:     "unmatched backtick is text",
			input:    "a ` >!b!<",
			expected: "a ` " + spoiler("b"),
		},
		{
			name:     "span does not cross blank line",
			input:    "`a\n\n>!b!< `",
			expected: "`a\n\n" + spoiler("b") + " `",
		},
		{
			name:     "fenced block untouched",
			input:    "```\nfoo >!x!< bar\n\n\n\n#baz\n```\n\n\n\n>!s!<",
			expected: "```\nfoo >!x!< bar\n\n\n\n#baz\n```\n\n" + spoiler("s"),
		},
		{
			name:     "tilde fence not closed by backticks",
			input:    "~~~\n```\n>!x!<\n~~~\n>!y!<",
			expected: "~~~\n```\n>!x!<\n~~~\n" + spoiler("y"),
		},
		{
			name:     "unclosed fence runs to end",
			input:    "```\n>!x!<\n\n\n\nz",
			expected: "```\n>!x!<\n\n\n\nz",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.PreprocessMarkdown(context.Background(), tt.input)
			if got != tt.expected {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
