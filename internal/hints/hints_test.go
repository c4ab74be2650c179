package hints

// Notes:
// - ForConfigNotFound tests cannot use t.Parallel() because they replace
//   the package-level userConfigDir variable.
// These are acceptable gaps: we test observable behavior through a stubbed config dir.

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestForConfigNotFound_Name(t *testing.T) {
	orig := userConfigDir
	defer func() { userConfigDir = orig }()
	userConfigDir = func() (string, error) { return "/home/u/.config", nil }

	hint := ForConfigNotFound("reddit")

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("expected hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "--config") {
		t.Error("expected --config suggestion")
	}
	want := filepath.Join("/home/u/.config", "go-snudown", "reddit.yaml")
	if !strings.Contains(hint, want) {
		t.Errorf("expected %s in hint, got %q", want, hint)
	}
}

func TestForConfigNotFound_Path(t *testing.T) {
	orig := userConfigDir
	defer func() { userConfigDir = orig }()
	userConfigDir = func() (string, error) { return "/home/u/.config", nil }

	hint := ForConfigNotFound("./missing.yaml")
	if strings.Contains(hint, "create") {
		t.Errorf("explicit paths should not suggest a config location, got %q", hint)
	}
}

func TestForConfigNotFound_NoConfigDir(t *testing.T) {
	orig := userConfigDir
	defer func() { userConfigDir = orig }()
	userConfigDir = func() (string, error) { return "", errors.New("no home") }

	hint := ForConfigNotFound("reddit")
	if strings.Contains(hint, "create") {
		t.Errorf("expected no location without a config dir, got %q", hint)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"output directory", ForOutputDirectory(), "writable"},
		{"input extension", ForInputExtension(), "--from"},
		{"empty input", ForEmptyInput(), "no content"},
		{"format", ForFormat("--to", []string{"tree", "json"}), "--to accepts: tree, json"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !strings.HasPrefix(tt.hint, "\n  hint: ") || !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint = %q, want %q", tt.hint, tt.want)
			}
		})
	}
}

func TestForFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := ForFormat("--to", nil); got != "" {
		t.Errorf("ForFormat with no values = %q, want empty", got)
	}
}
