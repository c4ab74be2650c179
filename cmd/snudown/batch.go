package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	snudown "github.com/alnah/go-snudown"
	"github.com/alnah/go-snudown/internal/config"
	"github.com/alnah/go-snudown/internal/fileutil"
	"github.com/alnah/go-snudown/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// DocumentParser is the interface for the extraction pipeline.
// Implementations must be safe for concurrent use.
type DocumentParser interface {
	Parse(ctx context.Context, markdown string) (*snudown.Result, error)
	ParseHTML(ctx context.Context, compiled string) (*snudown.Result, error)
	ParseRedditHTML(ctx context.Context, bodyHTML string) (*snudown.Result, error)
}

// Compile-time interface implementation check.
var _ DocumentParser = (*snudown.Parser)(nil)

// parseOptions are shared by every job of a batch.
type parseOptions struct {
	inputFormat  string // forced input format, "" = by extension
	outputFormat string
}

// ParseResult holds the outcome of a single parse.
type ParseResult struct {
	InputPath  string
	OutputPath string
	Output     []byte // rendering, kept only when OutputPath is empty
	InputSize  int
	Nodes      int
	Truncated  bool
	Err        error
	Duration   time.Duration
}

// parseBatch processes files concurrently. Results keep the order of files.
func parseBatch(ctx context.Context, parser DocumentParser, files []FileToParse, workers int, opts *parseOptions) []ParseResult {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ParseResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ParseResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = parseFile(ctx, parser, files[idx], opts)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// parseFile processes a single input and returns the result.
func parseFile(ctx context.Context, parser DocumentParser, f FileToParse, opts *parseOptions) ParseResult {
	start := time.Now()
	result := ParseResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ParseResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content := f.data
	if f.InputPath != stdinArg {
		var err error
		content, err = os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
		if err != nil {
			return fail(fmt.Errorf("%w: %v", ErrReadInput, err))
		}
	}
	result.InputSize = len(content)

	var res *snudown.Result
	var err error
	switch inputFormatFor(f.InputPath, opts.inputFormat) {
	case config.InputHTML:
		res, err = parser.ParseHTML(ctx, string(content))
	case config.InputReddit:
		res, err = parser.ParseRedditHTML(ctx, string(content))
	default:
		res, err = parser.Parse(ctx, string(content))
	}
	if errors.Is(err, snudown.ErrEmptyInput) {
		return fail(fmt.Errorf("%w%s", err, hints.ForEmptyInput()))
	}
	if err != nil {
		return fail(err)
	}
	result.Nodes = res.Document.Len()
	result.Truncated = res.Truncated

	var buf bytes.Buffer
	if err := render(&buf, opts.outputFormat, res.Document); err != nil {
		return fail(err)
	}

	if f.OutputPath == "" {
		result.Output = buf.Bytes()
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: creating output directory: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory()))
	}
	if err := fileutil.WriteFileAtomic(f.OutputPath, buf.Bytes(), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	result.Duration = time.Since(start)
	return result
}

// inputFormatFor resolves the input format of one file: the forced format,
// otherwise the one implied by its extension. Stdin defaults to markdown.
func inputFormatFor(path, forced string) string {
	if forced != "" {
		return forced
	}
	if f := fileutil.InputFormat(path); f != "" {
		return f
	}
	return config.InputMarkdown
}

// countFailed tallies failed parses.
func countFailed(results []ParseResult) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	return failed
}

// printResults writes renderings bound for stdout in input order, then
// reports each file and a summary. It returns the number of failures.
func printResults(results []ParseResult, quiet, verbose bool, env *Environment) int {
	failed := countFailed(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if r.OutputPath == "" {
			_, _ = env.Stdout.Write(r.Output)
			if verbose {
				fmt.Fprintf(env.Stderr, "%s: %s, %d nodes (%v)%s\n", r.InputPath,
					humanize.Bytes(uint64(r.InputSize)), r.Nodes,
					r.Duration.Round(time.Millisecond), truncatedNote(r.Truncated))
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %d nodes, %v)%s\n", r.InputPath, r.OutputPath,
				humanize.Bytes(uint64(r.InputSize)), r.Nodes,
				r.Duration.Round(time.Millisecond), truncatedNote(r.Truncated))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stderr, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}

	return failed
}

func truncatedNote(truncated bool) string {
	if truncated {
		return " truncated"
	}
	return ""
}
