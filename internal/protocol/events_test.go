// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package protocol

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/amsot/portfolio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents_GetMetadata(t *testing.T) {
	meta := Metadata{FetchID: "f-1", Version: CurrentProtocolVersion}

	events := []Event{
		ProjectsFetchStartedEvent{Metadata: meta},
		ProjectsLoadedEvent{Metadata: meta},
		ProjectsFetchFailedEvent{Metadata: meta},
	}

	for _, e := range events {
		t.Run(EventName(e), func(t *testing.T) {
			assert.Equal(t, "f-1", e.GetMetadata().FetchID)
			assert.Equal(t, CurrentProtocolVersion, e.GetMetadata().Version)
		})
	}
}

func TestEventName(t *testing.T) {
	assert.Equal(t, "projects.fetch_started", EventName(ProjectsFetchStartedEvent{}))
	assert.Equal(t, "projects.loaded", EventName(ProjectsLoadedEvent{}))
	assert.Equal(t, "projects.fetch_failed", EventName(ProjectsFetchFailedEvent{}))
	assert.Equal(t, "unknown", EventName(nil))
}

func TestProjectsLoadedEvent_JSON(t *testing.T) {
	e := ProjectsLoadedEvent{
		Metadata: Metadata{FetchID: "f-2", Version: CurrentProtocolVersion},
		Projects: []models.Project{{ID: 7, Title: models.RenderedField{Rendered: "Seven"}}},
		Duration: 150 * time.Millisecond,
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "f-2", decoded["fetch_id"], "metadata fields are flattened")
	assert.Len(t, decoded["projects"], 1)
}
