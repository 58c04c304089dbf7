// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Events published by the projects store. Every FetchProjects call emits
// exactly one ProjectsFetchStartedEvent followed by exactly one of
// ProjectsLoadedEvent or ProjectsFetchFailedEvent with the same FetchID.
package protocol

import (
	"time"

	"github.com/amsot/portfolio/internal/models"
)

// ProjectsFetchStartedEvent is sent when a fetch begins and loading turns on.
type ProjectsFetchStartedEvent struct {
	Metadata
	StartedAt time.Time `json:"started_at"`
}

func (e ProjectsFetchStartedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// ProjectsLoadedEvent is sent when a fetch replaced the project list.
type ProjectsLoadedEvent struct {
	Metadata
	Projects []models.Project `json:"projects"`
	Duration time.Duration    `json:"duration"`
}

func (e ProjectsLoadedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// ProjectsFetchFailedEvent is sent when a fetch failed. The project list
// is unchanged.
type ProjectsFetchFailedEvent struct {
	Metadata
	Message  string        `json:"message"`
	Kind     string        `json:"kind,omitempty"` // network, status, decode
	Duration time.Duration `json:"duration"`
}

func (e ProjectsFetchFailedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// EventName returns a stable wire name for an event.
func EventName(e Event) string {
	switch e.(type) {
	case ProjectsFetchStartedEvent:
		return "projects.fetch_started"
	case ProjectsLoadedEvent:
		return "projects.loaded"
	case ProjectsFetchFailedEvent:
		return "projects.fetch_failed"
	default:
		return "unknown"
	}
}
