// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the portfolio's project list together with the
// loading and error state of the last fetch.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amsot/portfolio/internal/logger"
	"github.com/amsot/portfolio/internal/models"
	"github.com/amsot/portfolio/internal/protocol"
	"github.com/amsot/portfolio/internal/wordpress"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// FallbackErrorMessage is stored when a failure carries no message of its own.
const FallbackErrorMessage = "Error loading projects."

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetStoreLogger()
		log = &l
	})
	return log
}

var tracer = otel.Tracer("github.com/amsot/portfolio/internal/store")

// Status is the state of the most recently settled or started fetch.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText lets Status appear as its name in JSON and YAML.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Snapshot is a consistent view of the store taken under one lock.
type Snapshot struct {
	Status   Status           `json:"status" yaml:"status"`
	Loading  bool             `json:"loading" yaml:"loading"`
	Error    string           `json:"error,omitempty" yaml:"error,omitempty"`
	Projects []models.Project `json:"projects" yaml:"projects"`
}

// Result is what a single FetchProjects call produced.
type Result struct {
	FetchID  string
	Projects []models.Project
	Err      error
}

// OK reports whether the fetch succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// ProjectSource is the content API the store reads from.
type ProjectSource interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
}

// Compile-time check that the WordPress client can back a store
var _ ProjectSource = (*wordpress.Client)(nil)

// Store is the projects store. The zero value is not usable; call New.
type Store struct {
	source ProjectSource

	mu       sync.RWMutex
	projects []models.Project
	status   Status
	loading  bool
	errMsg   string

	subMu       sync.Mutex
	subscribers map[int]chan protocol.Event
	nextSubID   int

	now func() time.Time
}

// New creates an empty store reading from source.
func New(source ProjectSource) *Store {
	return &Store{
		source:      source,
		projects:    []models.Project{},
		subscribers: make(map[int]chan protocol.Event),
		now:         time.Now,
	}
}

// Projects returns a copy of the current project list.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProjects(s.projects)
}

// Loading reports whether a fetch has started and not yet settled.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ErrorMessage returns the message of the last failed fetch, or "" when
// the last fetch succeeded, is still running, or never ran.
func (s *Store) ErrorMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Status returns the current fetch status.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Snapshot returns projects, loading, error and status together.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Status:   s.status,
		Loading:  s.loading,
		Error:    s.errMsg,
		Projects: copyProjects(s.projects),
	}
}

// Project looks up a single project by id in the current list.
func (s *Store) Project(id int) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.FindProject(s.projects, id)
}

// FetchProjects performs one request against the source and settles the
// store with its outcome. Overlapping calls are not coordinated: each one
// settles independently and the last to settle decides the visible list
// and error. The call never panics on a failed request; the failure is
// recorded in the store and returned in Result.Err.
func (s *Store) FetchProjects(ctx context.Context) Result {
	fetchID := uuid.New().String()
	ctx, span := tracer.Start(ctx, "store.FetchProjects")
	defer span.End()
	span.SetAttributes(attribute.String("fetch.id", fetchID))

	start := s.now()
	s.begin()
	s.publish(protocol.ProjectsFetchStartedEvent{
		Metadata:  metadata(fetchID),
		StartedAt: start,
	})
	getLog().Info().Str("fetch_id", fetchID).Msg("Fetching projects")

	projects, err := s.source.ListProjects(ctx)
	elapsed := s.now().Sub(start)

	if err != nil {
		msg := s.fail(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, msg)

		kind := string(wordpress.KindOf(err))
		getLog().Error().
			Err(err).
			Str("fetch_id", fetchID).
			Str("kind", kind).
			Dur("duration", elapsed).
			Msg("Error loading projects")

		s.publish(protocol.ProjectsFetchFailedEvent{
			Metadata: metadata(fetchID),
			Message:  msg,
			Kind:     kind,
			Duration: elapsed,
		})
		return Result{FetchID: fetchID, Err: err}
	}

	if projects == nil {
		projects = []models.Project{}
	}
	s.succeed(projects)
	span.SetAttributes(attribute.Int("projects.count", len(projects)))

	getLog().Info().
		Str("fetch_id", fetchID).
		Int("count", len(projects)).
		Dur("duration", elapsed).
		Msg("Projects loaded")
	for _, p := range projects {
		getLog().Debug().
			Int("id", p.ID).
			Str("title", p.PlainTitle()).
			Int("languages", p.Fields.Languages.Len()).
			Int("gallery", p.Fields.Gallery.Len()).
			Msg("Loaded project")
	}

	s.publish(protocol.ProjectsLoadedEvent{
		Metadata: metadata(fetchID),
		Projects: copyProjects(projects),
		Duration: elapsed,
	})
	return Result{FetchID: fetchID, Projects: copyProjects(projects)}
}

func (s *Store) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.status = StatusLoading
	s.errMsg = ""
}

func (s *Store) succeed(projects []models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = copyProjects(projects)
	s.errMsg = ""
	s.settle(StatusSucceeded)
}

func (s *Store) fail(err error) string {
	msg := errorMessage(err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
	s.settle(StatusFailed)
	return msg
}

// settle must be called with mu held. Any settling call clears loading,
// even when another fetch is still running.
func (s *Store) settle(outcome Status) {
	s.loading = false
	s.status = outcome
}

func errorMessage(err error) string {
	if err == nil {
		return FallbackErrorMessage
	}
	var fe *wordpress.FetchError
	if errors.As(err, &fe) && fe.Err == nil && fe.Kind != wordpress.ErrKindStatus {
		return FallbackErrorMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackErrorMessage
}

func metadata(fetchID string) protocol.Metadata {
	return protocol.Metadata{
		FetchID: fetchID,
		Version: protocol.CurrentProtocolVersion,
	}
}

func copyProjects(in []models.Project) []models.Project {
	out := make([]models.Project, len(in))
	copy(out, in)
	return out
}
