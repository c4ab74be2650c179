package fileutil_test

// Notes:
// - WriteFileAtomic write, close and chmod error branches are not tested:
//   triggering disk failures is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-snudown/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"valid extension json", "json", nil},
		{"valid extension yaml", "yaml", nil},
		{"empty extension", "", fileutil.ErrExtensionEmpty},
		{"forward slash path traversal", "../etc/passwd", fileutil.ErrExtensionPathTraversal},
		{"backslash path traversal", "..\\windows", fileutil.ErrExtensionPathTraversal},
		{"null byte injection", "json\x00exe", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReplaceExtension - Output path derivation
// ---------------------------------------------------------------------------

func TestReplaceExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		extension string
		want      string
		wantErr   error
	}{
		{"markdown to json", "docs/post.md", "json", "docs/post.json", nil},
		{"html to yaml", "post.html", "yaml", "post.yaml", nil},
		{"no extension", "README", "txt", "README.txt", nil},
		{"dotted name keeps stem", "a.b.markdown", "json", "a.b.json", nil},
		{"invalid extension", "post.md", "", "", fileutil.ErrExtensionEmpty},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.ReplaceExtension(tt.path, tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReplaceExtension() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ReplaceExtension(%q, %q) = %q, want %q", tt.path, tt.extension, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInputFormat - Extension to format mapping
// ---------------------------------------------------------------------------

func TestInputFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"post.md", fileutil.FormatMarkdown},
		{"post.markdown", fileutil.FormatMarkdown},
		{"POST.MD", fileutil.FormatMarkdown},
		{"body.html", fileutil.FormatHTML},
		{"body.htm", fileutil.FormatHTML},
		{"notes.txt", ""},
		{"noext", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.InputFormat(tt.path); got != tt.want {
				t.Errorf("InputFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic file replacement
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := fileutil.WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (temp files left behind)", len(entries))
	}
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.json")
	if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Error("WriteFileAtomic() into missing directory should fail")
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing file", filepath.Join(dir, "missing.md"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"reddit", false},
		{"my-config", false},
		{"./snudown.yaml", true},
		{"/etc/snudown.yaml", true},
		{`C:\config\snudown.yaml`, true},
		{"sub/dir", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
