package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

var commands = map[string]bool{
	"parse":   true,
	"version": true,
	"help":    true,
}

// isCommand reports whether s names a subcommand. Matching is case sensitive.
func isCommand(s string) bool {
	return commands[s]
}

// runMain dispatches the command line and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "snudown %s\n", Version)
		return ExitSuccess

	case "help", "-h", "--help":
		return runHelp(rest, env)

	case "parse":
		ctx, stop := notifyContext(context.Background())
		defer stop()

		err := runParse(ctx, rest, env)
		if errors.Is(err, flag.ErrHelp) {
			printParseUsage(env.Stdout)
			return ExitSuccess
		}
		if err != nil && !errors.Is(err, ErrParseFailed) {
			fmt.Fprintln(env.Stderr, err)
		}
		return exitCodeFor(err)

	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runHelp prints general or per-command help.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	switch args[0] {
	case "parse":
		printParseUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: snudown version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the version and exit.")
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown help topic: %s\n", args[0])
		return ExitUsage
	}
	return ExitSuccess
}
