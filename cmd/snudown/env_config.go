package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-snudown/internal/config"
)

const envPrefix = "SNUDOWN_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // SNUDOWN_CONFIG: config file name or path
	From       string // SNUDOWN_FROM: input format
	To         string // SNUDOWN_TO: output format
	InputDir   string // SNUDOWN_INPUT_DIR: default input directory
	OutputDir  string // SNUDOWN_OUTPUT_DIR: default output directory
	Workers    int    // SNUDOWN_WORKERS: parallel workers
}

// knownEnvVars lists valid SNUDOWN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SNUDOWN_CONFIG":     true,
	"SNUDOWN_FROM":       true,
	"SNUDOWN_TO":         true,
	"SNUDOWN_INPUT_DIR":  true,
	"SNUDOWN_OUTPUT_DIR": true,
	"SNUDOWN_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed or non-positive SNUDOWN_WORKERS values are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("SNUDOWN_CONFIG"),
		From:       strings.ToLower(getenv("SNUDOWN_FROM")),
		To:         strings.ToLower(getenv("SNUDOWN_TO")),
		InputDir:   getenv("SNUDOWN_INPUT_DIR"),
		OutputDir:  getenv("SNUDOWN_OUTPUT_DIR"),
	}

	if workers := getenv("SNUDOWN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized SNUDOWN_* variables.
// Helps catch typos like SNUDOWN_OUPUT_DIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.From != "" && cfg.Input.Format == "" {
		cfg.Input.Format = env.From
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	// Output format always has a default, so the variable wins over it
	// unless a config file chose something else.
	if env.To != "" && (cfg.Output.Format == "" || cfg.Output.Format == config.OutputTree) {
		cfg.Output.Format = env.To
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
