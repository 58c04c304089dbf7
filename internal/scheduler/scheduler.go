// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scheduler refreshes the projects store on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/amsot/portfolio/internal/config"
	"github.com/amsot/portfolio/internal/logger"
	"github.com/amsot/portfolio/internal/store"
	"github.com/robfig/cron/v3"
)

// Fetcher is the part of the store the scheduler drives.
type Fetcher interface {
	FetchProjects(ctx context.Context) store.Result
}

// Scheduler runs FetchProjects once at start and then on the configured
// cron spec. A scheduled run is skipped while the previous one is still
// in flight.
type Scheduler struct {
	fetcher Fetcher
	cfg     config.RefreshConfig
	cron    *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler validates cfg.Schedule and prepares a stopped scheduler.
func NewScheduler(fetcher Fetcher, cfg config.RefreshConfig) (*Scheduler, error) {
	cronLog := logger.NewCronLogAdapter(logger.GetSchedulerLogger())
	c := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	s := &Scheduler{fetcher: fetcher, cfg: cfg, cron: c}

	if cfg.Schedule != "" {
		if _, err := c.AddFunc(cfg.Schedule, s.scheduledRefresh); err != nil {
			return nil, fmt.Errorf("invalid refresh schedule %q: %w", cfg.Schedule, err)
		}
	}
	return s, nil
}

// Start begins the cron loop and, when fetch_on_start is set, fires one
// fetch in the background. Fetches are cancelled when ctx ends or Stop is
// called.
func (s *Scheduler) Start(ctx context.Context) {
	log := logger.GetSchedulerLogger()
	s.ctx, s.cancel = context.WithCancel(ctx)

	if s.cfg.FetchOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.refresh("startup")
		}()
	}

	if s.cfg.Schedule == "" {
		log.Info().Msg("Scheduled refresh disabled")
		return
	}

	s.cron.Start()
	log.Info().Str("schedule", s.cfg.Schedule).Msg("Scheduled refresh started")
}

// Stop halts the cron loop, cancels in-flight fetches and waits for them.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.cron.Stop().Done()
	s.wg.Wait()
	log := logger.GetSchedulerLogger()
	log.Info().Msg("Scheduler stopped")
}

func (s *Scheduler) scheduledRefresh() {
	s.refresh("schedule")
}

func (s *Scheduler) refresh(trigger string) {
	log := logger.GetSchedulerLogger()
	log.Debug().Str("trigger", trigger).Msg("Refreshing projects")

	res := s.fetcher.FetchProjects(s.ctx)
	if !res.OK() {
		// the store already logged the failure in detail
		log.Warn().Str("trigger", trigger).Str("fetch_id", res.FetchID).Msg("Refresh failed")
	}
}
