// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package wordpress reads the portfolio's project posts from the WordPress REST API.
package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/amsot/portfolio/internal/config"
	"github.com/amsot/portfolio/internal/logger"
	"github.com/amsot/portfolio/internal/models"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 512

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetWordPressLogger()
		log = &l
	})
	return log
}

var tracer = otel.Tracer("github.com/amsot/portfolio/internal/wordpress")

// Client issues the projects GET against a WordPress site.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a client for cfg.ProjectsURL. A zero cfg.Timeout means
// the request runs until the server answers or ctx is done.
func NewClient(cfg config.APIConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

// NewClientWithHTTP is NewClient with a caller supplied *http.Client.
func NewClientWithHTTP(cfg config.APIConfig, httpClient *http.Client) *Client {
	endpoint := cfg.ProjectsURL
	if endpoint == "" {
		endpoint = config.DefaultProjectsURL
	}
	return &Client{
		endpoint:   endpoint,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}
}

// Endpoint returns the URL the client fetches.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ListProjects performs one GET and decodes the JSON array of projects.
// Every failure is a *FetchError.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	ctx, span := tracer.Start(ctx, "wordpress.ListProjects")
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", http.MethodGet),
		attribute.String("url.full", c.endpoint),
	)

	projects, err := c.listProjects(ctx, span.SetAttributes)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("projects.count", len(projects)))
	return projects, nil
}

func (c *Client) listProjects(ctx context.Context, annotate func(...attribute.KeyValue)) ([]models.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Kind: ErrKindNetwork, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: ErrKindNetwork, Err: err}
	}
	defer resp.Body.Close()

	annotate(attribute.Int("http.response.status_code", resp.StatusCode))
	getLog().Debug().
		Str("url", c.endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Projects response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		getLog().Warn().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("Projects request returned non-success status")
		return nil, &FetchError{Kind: ErrKindStatus, StatusCode: resp.StatusCode}
	}

	var projects []models.Project
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		return nil, &FetchError{Kind: ErrKindDecode, Err: err}
	}
	if projects == nil {
		// a literal null body
		projects = []models.Project{}
	}
	return projects, nil
}
