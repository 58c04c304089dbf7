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
	"time"

	"github.com/amsot/portfolio/internal/logger"
	"github.com/amsot/portfolio/internal/scheduler"
	"github.com/amsot/portfolio/internal/server"
)

func serveCommand(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
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

	return serve(ctx, a)
}

// serve runs the API and the refresh scheduler until ctx is done or the
// listener fails.
func serve(ctx context.Context, a *app) error {
	log := logger.GetCLILogger()
	log.Info().Msg("Starting portfolio API server")

	sched, err := scheduler.NewScheduler(a.store, a.cfg.Refresh)
	if err != nil {
		return err
	}

	srv := server.New(&a.cfg.Server, a.store)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- srv.Run(ctx)
	}()

	sched.Start(ctx)

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutdown requested")
	case err := <-serverErrChan:
		if err != nil {
			log.Error().Err(err).Msg("Server error")
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	// Graceful shutdown: fresh context with timeout, independent of ctx.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error shutting down server")
	}
	sched.Stop()

	log.Info().Msg("API server shut down")
	return runErr
}
