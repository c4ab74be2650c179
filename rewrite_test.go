package snudown

import (
	"fmt"
	"testing"
)

func TestDocument_WithoutTables(t *testing.T) {
	t.Parallel()

	src := Extract("<p>before</p>\n<table><thead><tr><th>h</th></tr></thead><tbody><tr><td>c</td></tr></tbody></table>\n<p>after</p>")
	d := src.WithoutTables()

	assertParagraphs(t, d, []string{"text:before", "", "", "text:after"})
	if got := describe(src); len(got) != 5 {
		t.Errorf("source modified: %q", got)
	}
}

func TestDocument_Prune(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{"blank decorated run", "<p>a<strong> </strong>b</p>", []string{"text:a|text:b"}},
		{"paragraph emptied", "<p><em> </em></p>\n<p>x</p>", []string{"", "text:x"}},
		{"container kept", "<ul><li> </li><li>b</li></ul>", []string{"list(text:b)"}},
		{"link with blank text", `<p><a href="https://x.y"> </a>z</p>`, []string{"text:z"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertParagraphs(t, Extract(tt.html).Prune(), tt.want)
		})
	}
}

func TestTransforms_RegenerateIDs(t *testing.T) {
	t.Parallel()

	src := Extract("<table><thead><tr><th>h</th></tr></thead><tbody><tr><td>c</td></tr></tbody></table>\n" +
		"<ul>\n<li>p\n<ul>\n<li>c</li>\n</ul>\n</li>\n</ul>\n<p> </p>")

	docs := map[string]*Document{
		"without tables": src.WithoutTables(),
		"prune":          src.Prune(),
		"decorate":       src.DecorateLists(),
	}
	for name, d := range docs {
		for i := 0; i < d.Len(); i++ {
			if got := d.Node(NodeID(i)).ID; got != NodeID(i) {
				t.Errorf("%s: node %d has id %d", name, i, got)
			}
		}
		reachable := 0
		d.Walk(func(Node, int) bool { reachable++; return true })
		if reachable != d.Len() {
			t.Errorf("%s: %d nodes reachable of %d in arena", name, reachable, d.Len())
		}
	}

	if fmt.Sprint(describe(src)) == fmt.Sprint(describe(src.WithoutTables())) {
		t.Error("WithoutTables should change a document holding a table")
	}
}
