package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing failures.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// ioFlags holds input and output selection flags.
type ioFlags struct {
	from    string
	to      string
	output  string
	workers int
}

// renderFlags holds flags shaping the extracted tree.
type renderFlags struct {
	maxChars    int
	maxCharsSet bool
	hideTables  bool
	noDecorate  bool
	prune       bool
}

// parseFlags holds all flags of the parse command.
type parseFlags struct {
	common commonFlags
	io     ioFlags
	render renderFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show sizes, timing and traces")
}

// addIOFlags adds input/output flags to a FlagSet.
func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.from, "from", "f", "", "input format: markdown, html, reddit")
	fs.StringVarP(&f.to, "to", "t", "", "output format: tree, json, yaml, markdown")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
}

// addRenderFlags adds tree shaping flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.IntVar(&f.maxChars, "max-chars", 0, "truncate to n characters (0 = no limit)")
	fs.BoolVar(&f.hideTables, "hide-tables", false, "drop tables")
	fs.BoolVar(&f.noDecorate, "no-decorate", false, "keep list items undecorated")
	fs.BoolVar(&f.prune, "prune", false, "drop whitespace-only text nodes")
}

// parseParseFlags parses parse command flags and returns positional args.
// flag.ErrHelp is returned unwrapped so the caller can print usage.
func parseParseFlags(args []string) (*parseFlags, []string, error) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &parseFlags{}

	addCommonFlags(fs, &f.common)
	addIOFlags(fs, &f.io)
	addRenderFlags(fs, &f.render)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	f.render.maxCharsSet = fs.Changed("max-chars")

	return f, fs.Args(), nil
}
