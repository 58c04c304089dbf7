// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/amsot/portfolio/internal/logger"
	"github.com/amsot/portfolio/internal/tui"
)

func tuiCommand(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, *configPath)
	if err != nil {
		return err
	}
	defer a.close()

	cliLog := logger.GetCLILogger()
	cliLog.Info().Msg("Starting TUI")
	if err := tui.StartTUI(ctx, a.store); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
