package main

// Notes:
// - isCommand: we test command name matching.
// - runMain: we test exit codes and visible output for commands, flags,
//   stdin input, files and directories. Verbose mode is not exercised
//   because it reconfigures process-wide tracing.
// - hasVerboseFlag: we test raw argument scanning.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestIsCommand - Command name matching
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want bool
	}{
		{"parse", true},
		{"version", true},
		{"help", true},
		{"Parse", false},
		{"post.md", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isCommand(tt.arg); got != tt.want {
			t.Errorf("isCommand(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Raw argument scanning
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	if !hasVerboseFlag([]string{"parse", "-v", "x.md"}) {
		t.Error("expected -v to be detected")
	}
	if !hasVerboseFlag([]string{"parse", "--verbose"}) {
		t.Error("expected --verbose to be detected")
	}
	if hasVerboseFlag([]string{"parse", "--very"}) {
		t.Error("--very is not the verbose flag")
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no args", []string{"snudown"}, "", ExitUsage, "", "Usage:"},
		{"version", []string{"snudown", "version"}, "", ExitSuccess, "snudown dev", ""},
		{"help", []string{"snudown", "help"}, "", ExitSuccess, "Commands:", ""},
		{"help parse", []string{"snudown", "help", "parse"}, "", ExitSuccess, "--max-chars", ""},
		{"help unknown", []string{"snudown", "help", "nope"}, "", ExitUsage, "", "unknown help topic"},
		{"unknown command", []string{"snudown", "render"}, "", ExitUsage, "", "unknown command: render"},
		{"parse help flag", []string{"snudown", "parse", "--help"}, "", ExitSuccess, "Usage: snudown parse", ""},
		{"parse bad flag", []string{"snudown", "parse", "--bogus"}, "", ExitUsage, "", "invalid usage"},
		{"parse no input", []string{"snudown", "parse"}, "", ExitIO, "", "no input specified"},
		{"parse too many workers", []string{"snudown", "parse", "-w", "99", "-"}, "x", ExitUsage, "", "invalid worker count"},
		{"parse bad format", []string{"snudown", "parse", "-t", "pdf", "-"}, "x", ExitUsage, "", "output.format"},
		{"parse negative max", []string{"snudown", "parse", "--max-chars", "-1", "-"}, "x", ExitUsage, "", "maxCharacters"},
		{"parse missing file", []string{"snudown", "parse", "missing.md"}, "", ExitIO, "", "missing.md"},
		{"parse empty stdin", []string{"snudown", "parse", "-"}, "   ", ExitGeneral, "", "FAILED -"},
		{
			"parse stdin tree",
			[]string{"snudown", "parse", "-"}, "Hello **world**",
			ExitSuccess, "text bold \"world\"", "",
		},
		{
			"parse stdin markdown",
			[]string{"snudown", "parse", "-t", "markdown", "-"}, "Hello ~~old~~ *new*",
			ExitSuccess, "Hello ~~old~~ *new*", "",
		},
		{
			"parse stdin html",
			[]string{"snudown", "parse", "-f", "html", "-"}, "<h1>Title</h1>",
			ExitSuccess, "header level=1 \"Title\"", "",
		},
		{
			"parse stdin truncated",
			[]string{"snudown", "parse", "-t", "markdown", "--max-chars", "5", "-"}, "Hello world",
			ExitSuccess, "Hello…", "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(tt.stdin)
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstdout: %s\nstderr: %s", code, tt.wantCode, stdout, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout missing %q:\n%s", tt.wantStdout, stdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, stderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Directory - Batch to output directory
// ---------------------------------------------------------------------------

func TestRunMain_Directory(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeTestFile(t, filepath.Join(in, "a.md"), "# Title\n\nSome *text*")
	writeTestFile(t, filepath.Join(in, "sub", "b.html"), "<p>b</p>")

	env, stdout, stderr := testEnv("")
	code := runMain([]string{"snudown", "parse", "-t", "json", "-o", out, "-w", "2", in}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", code, stderr)
	}

	for _, name := range []string{"a.json", filepath.Join("sub", "b.json")} {
		data, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		var blocks [][]map[string]any
		if err := json.Unmarshal(data, &blocks); err != nil {
			t.Errorf("%s is not valid JSON: %v", name, err)
		}
		if !strings.Contains(stdout.String(), "Created "+filepath.Join(out, name)) {
			t.Errorf("stdout missing created line for %s:\n%s", name, stdout)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_EnvConfig - Environment overrides
// ---------------------------------------------------------------------------

func TestRunMain_EnvConfig(t *testing.T) {
	t.Parallel()

	env, stdout, stderr := testEnv("Hello **world**")
	vars := map[string]string{"SNUDOWN_TO": "yaml", "SNUDOWN_TYPO": "1"}
	env.Getenv = mapGetenv(vars)
	env.Environ = func() []string { return []string{"SNUDOWN_TO=yaml", "SNUDOWN_TYPO=1"} }

	if code := runMain([]string{"snudown", "parse", "-"}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", code, stderr)
	}
	if !strings.Contains(stdout.String(), "decoration: bold") {
		t.Errorf("SNUDOWN_TO=yaml not applied:\n%s", stdout)
	}
	if !strings.Contains(stderr.String(), "SNUDOWN_TYPO") {
		t.Errorf("expected warning for SNUDOWN_TYPO:\n%s", stderr)
	}

	// Flags win over the environment.
	env, stdout, _ = testEnv("Hello **world**")
	env.Getenv = mapGetenv(vars)
	if code := runMain([]string{"snudown", "parse", "-t", "markdown", "-"}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "Hello **world**") {
		t.Errorf("flag should override SNUDOWN_TO:\n%s", stdout)
	}
}
