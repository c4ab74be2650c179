package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	snudown "github.com/alnah/go-snudown"
	"github.com/alnah/go-snudown/internal/config"
	"github.com/alnah/go-snudown/internal/hints"
)

// Sentinel errors for the parse command.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
	ErrParseFailed = errors.New("one or more inputs failed")
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

var (
	inputFormats  = []string{config.InputMarkdown, config.InputHTML, config.InputReddit}
	outputFormats = []string{config.OutputTree, config.OutputJSON, config.OutputYAML, config.OutputMarkdown}
)

// runParse orchestrates a parse run.
func runParse(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseParseFlags(args)
	if err != nil {
		return err
	}

	if err := validateWorkers(flags.io.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, err := resolveConfig(flags.common.config, envCfg, env)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w%s", err, validationHint(cfg))
	}

	configureTracing(flags.common.verbose)

	parser, err := snudown.NewParser(
		snudown.WithMaxCharacters(cfg.Render.MaxCharacters),
		snudown.WithHideTables(cfg.Render.HideTables),
		snudown.WithDecorateLists(cfg.Render.DecorateLists),
		snudown.WithPruneEmpty(cfg.Render.PruneEmpty),
	)
	if err != nil {
		return err
	}

	inputs, err := resolveInputs(positional, cfg)
	if err != nil {
		return err
	}

	var files []FileToParse
	for _, in := range inputs {
		found, err := discoverFiles(in, cfg.Output.DefaultDir, cfg.Output.Format)
		if err != nil {
			return fmt.Errorf("discovering files: %w", err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no .md, .markdown, .html or .htm files in %s",
			ErrNoInput, strings.Join(inputs, ", "))
	}

	if err := loadStdin(files, env.Stdin); err != nil {
		return err
	}

	workers := flags.io.workers
	if workers == 0 {
		workers = envCfg.Workers
	}

	opts := &parseOptions{
		inputFormat:  cfg.Input.Format,
		outputFormat: cfg.Output.Format,
	}
	results := parseBatch(ctx, parser, files, resolveWorkers(workers), opts)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrParseFailed, failed, len(results))
	}
	return nil
}

// resolveConfig loads the named config file, falling back to the
// environment's default configuration. The flag wins over SNUDOWN_CONFIG.
func resolveConfig(flagConfig string, envCfg *envConfig, env *Environment) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		cfg := *env.Config
		return &cfg, nil
	}
	cfg, err := config.LoadConfig(name)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(name))
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// validationHint lists accepted values when a format is the invalid field.
func validationHint(cfg *config.Config) string {
	if cfg.Input.Format != "" && !slices.Contains(inputFormats, cfg.Input.Format) {
		return hints.ForFormat("--from", inputFormats)
	}
	if !slices.Contains(outputFormats, cfg.Output.Format) {
		return hints.ForFormat("--to", outputFormats)
	}
	return ""
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *parseFlags, cfg *config.Config) {
	if flags.io.from != "" {
		cfg.Input.Format = strings.ToLower(flags.io.from)
	}
	if flags.io.to != "" {
		cfg.Output.Format = strings.ToLower(flags.io.to)
	}
	if flags.io.output != "" {
		cfg.Output.DefaultDir = flags.io.output
	}
	if flags.render.maxCharsSet {
		cfg.Render.MaxCharacters = flags.render.maxChars
	}
	if flags.render.hideTables {
		cfg.Render.HideTables = true
	}
	if flags.render.noDecorate {
		cfg.Render.DecorateLists = false
	}
	if flags.render.prune {
		cfg.Render.PruneEmpty = true
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = config.OutputTree
	}
}

// resolveInputs determines the inputs from args or config.
func resolveInputs(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}, nil
	}
	return nil, ErrNoInput
}

// loadStdin reads standard input into the single "-" entry, if any.
func loadStdin(files []FileToParse, stdin io.Reader) error {
	seen := false
	for i := range files {
		if files[i].InputPath != stdinArg {
			continue
		}
		if seen {
			return fmt.Errorf("%w: standard input named more than once", ErrUsage)
		}
		seen = true
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		files[i].data = data
	}
	return nil
}
