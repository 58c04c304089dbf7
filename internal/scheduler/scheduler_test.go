// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amsot/portfolio/internal/config"
	"github.com/amsot/portfolio/internal/store"
	"github.com/amsot/portfolio/test/testutil"
)

type countingFetcher struct {
	calls atomic.Int32
}

func (f *countingFetcher) FetchProjects(ctx context.Context) store.Result {
	f.calls.Add(1)
	return store.Result{}
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	_, err := NewScheduler(&countingFetcher{}, config.RefreshConfig{Schedule: "whenever"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid refresh schedule")
}

func TestScheduler_FetchOnStart(t *testing.T) {
	f := &countingFetcher{}
	s, err := NewScheduler(f, config.RefreshConfig{FetchOnStart: true})
	require.NoError(t, err)

	s.Start(context.Background())
	s.Stop()

	assert.Equal(t, int32(1), f.calls.Load())
}

func TestScheduler_NoFetchOnStart(t *testing.T) {
	f := &countingFetcher{}
	s, err := NewScheduler(f, config.RefreshConfig{})
	require.NoError(t, err)

	s.Start(context.Background())
	s.Stop()

	assert.Zero(t, f.calls.Load())
}

func TestScheduler_RunsOnSchedule(t *testing.T) {
	f := &countingFetcher{}
	s, err := NewScheduler(f, config.RefreshConfig{Schedule: "@every 1s"})
	require.NoError(t, err)

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return f.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_DrivesStore(t *testing.T) {
	src := testutil.NewFakeSource(testutil.SampleProjects(), nil)
	st := store.New(src)

	s, err := NewScheduler(st, config.RefreshConfig{FetchOnStart: true})
	require.NoError(t, err)
	s.Start(context.Background())
	s.Stop()

	assert.Len(t, st.Projects(), 3)
	assert.Equal(t, store.StatusSucceeded, st.Status())
}

func TestScheduler_StopCancelsInFlightFetch(t *testing.T) {
	src := testutil.NewGatedSource()
	st := store.New(src)

	s, err := NewScheduler(st, config.RefreshConfig{FetchOnStart: true})
	require.NoError(t, err)
	s.Start(context.Background())

	testutil.NextPending(t, src)
	s.Stop()

	assert.False(t, st.Loading())
	assert.Equal(t, store.StatusFailed, st.Status())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s, err := NewScheduler(&countingFetcher{}, config.RefreshConfig{})
	require.NoError(t, err)
	assert.NotPanics(t, s.Stop)
}
