// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// userConfigDir is replaced in tests.
var userConfigDir = os.UserConfigDir

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and, for bare names, the user config location.
func ForConfigNotFound(name string) string {
	hint := "use --config /path/to/file.yaml"
	if name != "" && !strings.ContainsAny(name, `/\`) {
		if dir, err := userConfigDir(); err == nil {
			hint += " or create " + filepath.Join(dir, "go-snudown", name+".yaml")
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInputExtension returns a hint for files the parser cannot recognise.
func ForInputExtension() string {
	return format("rename to .md or .html, or read it from stdin with --from and -")
}

// ForEmptyInput returns a hint for inputs that contain only whitespace.
func ForEmptyInput() string {
	return format("the input has no content to parse")
}

// ForFormat returns hints listing the accepted values of a format option.
func ForFormat(option string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format(option + " accepts: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
