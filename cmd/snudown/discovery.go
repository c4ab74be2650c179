package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-snudown/internal/config"
	"github.com/alnah/go-snudown/internal/fileutil"
	"github.com/alnah/go-snudown/internal/hints"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension      = errors.New("file must have .md, .markdown, .html or .htm extension")
	ErrOutputOverwritesInput = errors.New("output path would overwrite its input")
)

// outputExtensions maps output formats to file extensions.
var outputExtensions = map[string]string{
	config.OutputJSON:     "json",
	config.OutputYAML:     "yaml",
	config.OutputTree:     "txt",
	config.OutputMarkdown: "md",
}

// FileToParse represents a single input to process. An empty OutputPath
// sends the rendering to stdout.
type FileToParse struct {
	InputPath  string
	OutputPath string
	data       []byte // preloaded content, stdin only
}

// discoverFiles finds every parseable file under inputPath.
// A single file must carry a known extension; directories are walked and
// unknown extensions skipped.
func discoverFiles(inputPath, outputDir, outputFormat string) ([]FileToParse, error) {
	if inputPath == stdinArg {
		return []FileToParse{{InputPath: stdinArg}}, nil
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateInputExtension(inputPath); err != nil {
			return nil, err
		}
		outPath, err := resolveOutputPath(inputPath, outputDir, "", outputFormat)
		if err != nil {
			return nil, err
		}
		return []FileToParse{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToParse
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || fileutil.InputFormat(path) == "" {
			return nil
		}
		outPath, err := resolveOutputPath(path, outputDir, inputPath, outputFormat)
		if err != nil {
			return err
		}
		files = append(files, FileToParse{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines where the rendering of inputPath goes.
// Without an output directory everything goes to stdout. Inside a walked
// directory the relative layout is mirrored under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir, outputFormat string) (string, error) {
	if outputDir == "" {
		return "", nil
	}

	target := filepath.Join(outputDir, filepath.Base(inputPath))
	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			target = filepath.Join(outputDir, rel)
		}
	}

	outPath, err := fileutil.ReplaceExtension(target, outputExtensions[outputFormat])
	if err != nil {
		return "", err
	}
	if filepath.Clean(outPath) == filepath.Clean(inputPath) {
		return "", fmt.Errorf("%w: %s", ErrOutputOverwritesInput, inputPath)
	}
	return outPath, nil
}

// validateInputExtension checks that the file has a parseable extension.
func validateInputExtension(path string) error {
	if fileutil.InputFormat(path) == "" {
		return fmt.Errorf("%w: got %q%s", ErrInvalidExtension,
			strings.ToLower(filepath.Ext(path)), hints.ForInputExtension())
	}
	return nil
}
