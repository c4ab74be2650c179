package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-snudown/internal/fileutil"
	"github.com/alnah/go-snudown/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Input formats.
const (
	InputMarkdown = "markdown"
	InputHTML     = "html"
	InputReddit   = "reddit" // platform body_html, possibly entity-escaped
)

// Output formats.
const (
	OutputJSON     = "json"
	OutputYAML     = "yaml"
	OutputTree     = "tree"
	OutputMarkdown = "markdown"
)

// MaxCharactersLimit bounds render.maxCharacters.
const MaxCharactersLimit = 1_000_000

// Config holds all configuration for a parse run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Format     string `yaml:"format"`     // "markdown", "html", "reddit" (empty = by file extension)
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Format     string `yaml:"format"`     // "json", "yaml", "tree", "markdown" (default: "tree")
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = stdout)
}

// RenderConfig defines how the extracted tree is shaped.
type RenderConfig struct {
	MaxCharacters int  `yaml:"maxCharacters"` // 0 = no truncation
	HideTables    bool `yaml:"hideTables"`
	DecorateLists bool `yaml:"decorateLists"`
	PruneEmpty    bool `yaml:"pruneEmpty"`
}

// Validate checks enumerated fields and bounds.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Input.Format) {
	case "", InputMarkdown, InputHTML, InputReddit:
		// valid
	default:
		return fmt.Errorf("%w: input.format %q (must be markdown, html, or reddit)", ErrInvalidValue, c.Input.Format)
	}

	switch strings.ToLower(c.Output.Format) {
	case "", OutputJSON, OutputYAML, OutputTree, OutputMarkdown:
		// valid
	default:
		return fmt.Errorf("%w: output.format %q (must be json, yaml, tree, or markdown)", ErrInvalidValue, c.Output.Format)
	}

	if c.Render.MaxCharacters < 0 || c.Render.MaxCharacters > MaxCharactersLimit {
		return fmt.Errorf("%w: render.maxCharacters must be between 0 and %d, got %d",
			ErrInvalidValue, MaxCharactersLimit, c.Render.MaxCharacters)
	}

	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// tree output, decorated lists, no truncation.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Format: ""},
		Output: OutputConfig{Format: OutputTree},
		Render: RenderConfig{DecorateLists: true},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-snudown/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-snudown", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
