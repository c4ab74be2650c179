package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snudown <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  parse      Parse Snudown markdown or compiled HTML into a node tree")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'snudown help <command>' for details on a specific command.")
}

// printParseUsage prints usage for the parse command.
func printParseUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snudown parse <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Parse Snudown into paragraphs of typed nodes.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File, directory, or - for stdin (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "           Directories are scanned for .md, .markdown, .html and .htm files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -f, --from <fmt>          Input format: markdown, html, reddit (default: by extension)")
	fmt.Fprintln(w, "  -t, --to <fmt>            Output format: tree, json, yaml, markdown (default: tree)")
	fmt.Fprintln(w, "  -o, --output <dir>        Write one file per input into dir (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --max-chars <n>       Truncate to n characters of text (0 = no limit)")
	fmt.Fprintln(w, "      --hide-tables         Drop tables from the output")
	fmt.Fprintln(w, "      --no-decorate         Keep list items without bullets or numbers")
	fmt.Fprintln(w, "      --prune               Drop whitespace-only text nodes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show sizes, timing and extraction traces")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SNUDOWN_CONFIG            Config file name or path")
	fmt.Fprintln(w, "  SNUDOWN_FROM              Input format")
	fmt.Fprintln(w, "  SNUDOWN_TO                Output format")
	fmt.Fprintln(w, "  SNUDOWN_OUTPUT_DIR        Output directory")
	fmt.Fprintln(w, "  SNUDOWN_WORKERS           Parallel workers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  snudown parse post.md")
	fmt.Fprintln(w, "  snudown parse -t json -o out/ posts/")
	fmt.Fprintln(w, "  curl -s $URL | jq -r .body_html | snudown parse -f reddit -")
}
