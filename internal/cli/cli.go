// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
)

const (
	appName    = "portfolio"
	appVersion = "0.1.0"
)

// Execute runs the CLI application
func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run dispatches args[0] to its command, writing output to stdout and
// diagnostics to stderr.
func Run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		return printUsage(stdout)
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "projects":
		return projectsCommand(rest, stdout, stderr)
	case "serve":
		return serveCommand(rest, stderr)
	case "tui":
		return tuiCommand(rest, stderr)
	case "version":
		fmt.Fprintf(stdout, "%s version %s\n", appName, appVersion)
		return nil
	case "help", "-h", "--help":
		return printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		printUsage(stderr)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printUsage(w io.Writer) error {
	fmt.Fprintf(w, `%s - browse the projects published on data.amsot.net

Usage:
  %s <command> [arguments]

Commands:
  projects   Fetch and print the project list
  serve      Run the REST + WebSocket API
  tui        Browse projects in the terminal
  version    Print version information
  help       Show this help message

Flags (projects, serve, tui):
  --config <path>   Config file (default: search ./config.yaml, ./config, /etc/portfolio, ~/.portfolio)

Examples:
  %s projects
  %s projects --format json
  %s serve --config ./config/prod.yaml
  %s tui

`, appName, appName, appName, appName, appName, appName)
	return nil
}
