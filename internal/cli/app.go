// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/amsot/portfolio/internal/config"
	"github.com/amsot/portfolio/internal/logger"
	"github.com/amsot/portfolio/internal/store"
	"github.com/amsot/portfolio/internal/telemetry"
	"github.com/amsot/portfolio/internal/wordpress"
)

// app is what every command builds before doing its work: configuration,
// logging, tracing and one projects store owned by the command.
type app struct {
	cfg      *config.AppConfig
	store    *store.Store
	shutdown telemetry.ShutdownFunc
}

func bootstrap(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Initialize(&cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.CloseGlobal()
		return nil, fmt.Errorf("failed to set up telemetry: %w", err)
	}

	client := wordpress.NewClient(cfg.API)
	cliLog := logger.GetCLILogger()
	cliLog.Debug().
		Str("endpoint", client.Endpoint()).
		Bool("telemetry", cfg.Telemetry.Enabled).
		Msg("Application bootstrapped")

	return &app{
		cfg:      cfg,
		store:    store.New(client),
		shutdown: shutdown,
	}, nil
}

// close flushes spans and log files.
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.shutdown(ctx); err != nil {
		cliLog := logger.GetCLILogger()
		cliLog.Warn().Err(err).Msg("Telemetry shutdown failed")
	}
	logger.CloseGlobal()
}
