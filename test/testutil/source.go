// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"context"
	"sync"

	"github.com/amsot/portfolio/internal/models"
)

// FakeSource stands in for the WordPress client. By default every call
// answers immediately with Projects and Err. A gated source instead parks
// each call until the test resolves it, which lets tests observe the
// loading state and control the order in which overlapping calls settle.
type FakeSource struct {
	mu       sync.Mutex
	Projects []models.Project
	Err      error
	calls    int

	gated   bool
	started chan *PendingCall
}

// NewFakeSource answers every call with projects and err.
func NewFakeSource(projects []models.Project, err error) *FakeSource {
	return &FakeSource{Projects: projects, Err: err}
}

// NewGatedSource parks every call until its PendingCall is resolved.
func NewGatedSource() *FakeSource {
	return &FakeSource{gated: true, started: make(chan *PendingCall, 16)}
}

// PendingCall is one parked ListProjects call.
type PendingCall struct {
	done chan fakeResult
}

type fakeResult struct {
	projects []models.Project
	err      error
}

// Resolve makes the call return projects.
func (p *PendingCall) Resolve(projects []models.Project) {
	p.done <- fakeResult{projects: projects}
}

// Reject makes the call return err.
func (p *PendingCall) Reject(err error) {
	p.done <- fakeResult{err: err}
}

// Started delivers gated calls in the order they arrived.
func (f *FakeSource) Started() <-chan *PendingCall {
	return f.started
}

// Set changes the immediate answer of a non-gated source.
func (f *FakeSource) Set(projects []models.Project, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Projects = projects
	f.Err = err
}

// Calls returns how many times ListProjects ran.
func (f *FakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeSource) ListProjects(ctx context.Context) ([]models.Project, error) {
	f.mu.Lock()
	f.calls++
	projects, err, gated := f.Projects, f.Err, f.gated
	f.mu.Unlock()

	if !gated {
		return projects, err
	}

	call := &PendingCall{done: make(chan fakeResult, 1)}
	f.started <- call
	select {
	case r := <-call.done:
		return r.projects, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
