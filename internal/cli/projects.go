// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/amsot/portfolio/internal/models"
	"github.com/amsot/portfolio/internal/store"
	"gopkg.in/yaml.v3"
)

type projectsOptions struct {
	configPath string
	format     string
}

func projectsCommand(args []string, stdout, stderr io.Writer) error {
	opts := &projectsOptions{}
	fs := flag.NewFlagSet("projects", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVar(&opts.format, "format", "table", "Output format: table, json or yaml")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if !validFormat(opts.format) {
		return fmt.Errorf("unknown format %q (want table, json or yaml)", opts.format)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, opts.configPath)
	if err != nil {
		return err
	}
	defer a.close()

	return listProjects(ctx, a.store, opts.format, stdout)
}

func validFormat(format string) bool {
	switch format {
	case "table", "json", "yaml":
		return true
	}
	return false
}

// listProjects runs one fetch and prints its outcome. A failed fetch is
// returned as an error carrying the store's message.
func listProjects(ctx context.Context, st *store.Store, format string, w io.Writer) error {
	res := st.FetchProjects(ctx)
	if !res.OK() {
		return errors.New(st.ErrorMessage())
	}
	return renderProjects(w, st.Projects(), format)
}

func renderProjects(w io.Writer, projects []models.Project, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(projects)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(projects); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return renderTable(w, projects)
	}
}

func renderTable(w io.Writer, projects []models.Project) error {
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "No projects found.")
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-6s  %-28s  %-36s  %s\n", "ID", "TITLE", "TAG LINE", "LANGUAGES")
	fmt.Fprintln(w, "──────  ────────────────────────────  ────────────────────────────────────  ────────────────")
	for _, p := range projects {
		fmt.Fprintf(w, "%-6d  %-28s  %-36s  %s\n",
			p.ID,
			truncate(p.PlainTitle(), 28),
			truncate(p.Fields.TagLine, 36),
			strings.Join(p.Fields.LanguageNames(), ", "),
		)
	}
	_, err := fmt.Fprintln(w)
	return err
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
