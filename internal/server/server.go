// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/amsot/portfolio/internal/config"

	"github.com/go-chi/chi/v5"
)

const subscriptionBuffer = 64

// Server is the REST + WebSocket API server.
type Server struct {
	httpServer  *http.Server
	handlers    *Handlers
	broadcaster *EventBroadcaster
	registry    *ClientRegistry
	unsubscribe func()
	cancel      context.CancelFunc
}

// New creates and wires up the API server. It subscribes to st right away so
// no event is missed between New and Run. It does NOT start listening;
// call Run() for that.
func New(cfg *config.ServerConfig, st ProjectStore) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	registry := NewClientRegistry()
	events, unsubscribe := st.Subscribe(subscriptionBuffer)
	broadcaster := NewEventBroadcaster(events, registry)
	handlers := NewHandlers(ctx, st, cfg.RefreshPerMinute)

	r := chi.NewRouter()

	// Global middleware
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(AccessLog)
	r.Use(CORS(cfg.AllowedOrigins))
	r.Use(MaxBodySize(1 << 20)) // 1 MB default

	r.Get("/healthz", handlers.Health)

	// REST routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/projects", handlers.GetProjects)
		r.Post("/projects/refresh", handlers.RefreshProjects)
		r.Get("/projects/{id}", handlers.GetProject)
	})

	// WebSocket
	r.Get("/ws", HandleWebSocket(registry, cfg.AllowedOrigins))

	addr := net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port))

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		handlers:    handlers,
		broadcaster: broadcaster,
		registry:    registry,
		unsubscribe: unsubscribe,
		cancel:      cancel,
	}
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run starts the event broadcaster goroutine and the HTTP server.
// Blocks until the server is shut down.
func (s *Server) Run(ctx context.Context) error {
	go s.runBroadcaster(ctx)

	getLog().Info().Str("addr", s.httpServer.Addr).Msg("API server listening")
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// runBroadcaster restarts the broadcaster after a panic a few times before
// giving up.
func (s *Server) runBroadcaster(ctx context.Context) {
	const maxRetries = 3
	for attempt := 1; attempt <= maxRetries; attempt++ {
		panicked := false
		func() {
			defer func() {
				if r := recover(); r != nil {
					panicked = true
					getLog().Error().Interface("panic", r).Int("attempt", attempt).Msg("Event broadcaster panic")
				}
			}()
			s.broadcaster.Run(ctx)
		}()

		// Normal return (context cancelled or unsubscribed), exit without retry.
		if !panicked {
			return
		}

		if attempt < maxRetries {
			getLog().Warn().Int("attempt", attempt).Msg("Restarting event broadcaster after panic")
			time.Sleep(1 * time.Second)
		}
	}
	getLog().Error().Msg("Event broadcaster exhausted retries - events will no longer be dispatched")
}

// Shutdown gracefully stops the HTTP server, cancels background refreshes
// and drops the store subscription.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.cancel()
	s.handlers.wait()
	s.unsubscribe()
	return err
}
