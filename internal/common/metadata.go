// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package common provides shared types used across multiple packages.
package common

// Metadata is embedded in every event the store publishes to its consumers.
type Metadata struct {
	// FetchID correlates the start and the outcome of one FetchProjects call.
	// Overlapping calls carry different IDs.
	FetchID string `json:"fetch_id,omitempty"`

	// Version indicates the protocol version, "v{major}.{minor}.{patch}".
	Version string `json:"version"`
}

// CurrentProtocolVersion is bumped on breaking changes to event payloads.
const CurrentProtocolVersion = "v1.0.0"

// Event is anything the store can publish to subscribers.
type Event interface {
	GetMetadata() Metadata
}
