// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package projectlist

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amsot/portfolio/internal/models"
	"github.com/amsot/portfolio/internal/protocol"
	"github.com/amsot/portfolio/internal/store"
	"github.com/amsot/portfolio/internal/tui/messages"
	"github.com/amsot/portfolio/internal/wordpress"
	"github.com/amsot/portfolio/test/testutil"
)

func newLoadedModel(t *testing.T) (Model, *testutil.FakeSource) {
	t.Helper()
	src := testutil.NewFakeSource(testutil.SampleProjects(), nil)
	st := store.New(src)
	model := NewModel(context.Background(), st)
	model.SetSize(120, 40)

	newModel, _ := testutil.SendMessage(model, runFetch(t, model))
	return newModel.(Model), src
}

// runFetch executes the fetch command synchronously and returns its message.
func runFetch(t *testing.T, m Model) tea.Msg {
	t.Helper()
	msg := testutil.ExecuteCommand(m.fetch())
	require.IsType(t, messages.FetchFinishedMsg{}, msg)
	return msg
}

func TestProjectItem(t *testing.T) {
	tests := []struct {
		name     string
		item     ProjectItem
		wantDesc string
	}{
		{
			name:     "tag line only",
			item:     ProjectItem{Name: "Demo", TagLine: "t"},
			wantDesc: "t",
		},
		{
			name:     "tag line and languages",
			item:     ProjectItem{Name: "Site", TagLine: "Company site", Languages: []string{"Vue", "PHP"}},
			wantDesc: "Company site · Vue, PHP",
		},
		{
			name:     "languages only",
			item:     ProjectItem{Name: "Lib", Languages: []string{"Go"}},
			wantDesc: "Go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.item.Name, tt.item.FilterValue())
			assert.Equal(t, tt.item.Name, tt.item.Title())
			assert.Equal(t, tt.wantDesc, tt.item.Description())
			assert.Equal(t, tt.item.Name+": "+tt.wantDesc, tt.item.String())
		})
	}
}

func TestNewProjectItem_UsesPlainText(t *testing.T) {
	p := testutil.SampleProjects()[1]
	item := newProjectItem(p)

	assert.Equal(t, "Amsot – Web", item.Name)
	assert.Equal(t, []string{"Vue", "PHP"}, item.Languages)
	assert.Equal(t, 7, item.Project.ID)
}

func TestNewModel(t *testing.T) {
	model := NewModel(context.Background(), store.New(testutil.NewFakeSource(nil, nil)))

	assert.False(t, model.Loading())
	assert.Empty(t, model.ErrorMessage())
	assert.Empty(t, model.Items())
}

func TestInit_FetchesProjects(t *testing.T) {
	src := testutil.NewFakeSource(testutil.SampleProjects(), nil)
	model := NewModel(context.Background(), store.New(src))

	msgs := testutil.CollectMsgs(model.Init())
	assert.Equal(t, 1, src.Calls(), "the screen fetches on mount")

	var finished *messages.FetchFinishedMsg
	for _, msg := range msgs {
		if f, ok := msg.(messages.FetchFinishedMsg); ok {
			finished = &f
		}
	}
	require.NotNil(t, finished)
	assert.True(t, finished.Result.OK())

	newModel, _ := testutil.SendMessage(model, *finished)
	updated := newModel.(Model)
	assert.Len(t, updated.Items(), 3)
	assert.False(t, updated.Loading())
}

func TestLoadingWhileFetching(t *testing.T) {
	src := testutil.NewGatedSource()
	st := store.New(src)
	model := NewModel(context.Background(), st)
	model.SetSize(120, 40)

	done := make(chan tea.Msg, 1)
	go func() { done <- testutil.ExecuteCommand(model.fetch()) }()
	call := testutil.NextPending(t, src)

	newModel, _ := testutil.SendMessage(model, protocol.ProjectsFetchStartedEvent{})
	model = newModel.(Model)
	assert.True(t, model.Loading())
	testutil.AssertViewContains(t, model, "Loading projects...")

	call.Resolve(testutil.SampleProjects())
	newModel, _ = testutil.SendMessage(model, <-done)
	model = newModel.(Model)

	assert.False(t, model.Loading())
	assert.Len(t, model.Items(), 3)
	testutil.AssertViewContains(t, model, "Total: 3 projects")
}

func TestFailureKeepsItemsVisible(t *testing.T) {
	model, src := newLoadedModel(t)
	require.Len(t, model.Items(), 3)

	src.Set(nil, &wordpress.FetchError{Kind: wordpress.ErrKindStatus, StatusCode: 500})
	newModel, cmd := testutil.SendMessage(model, testutil.KeyPress("r"))
	require.NotNil(t, cmd)
	newModel, _ = testutil.SendMessage(newModel, testutil.ExecuteCommand(cmd))
	model = newModel.(Model)

	assert.Equal(t, "request failed with status code 500", model.ErrorMessage())
	assert.Len(t, model.Items(), 3, "previous projects stay visible")
	testutil.AssertViewContains(t, model, "Error: request failed with status code 500")
	testutil.AssertViewContains(t, model, "Demo")
}

func TestRefreshClearsError(t *testing.T) {
	src := testutil.NewFakeSource(nil, &wordpress.FetchError{Kind: wordpress.ErrKindNetwork, Err: assert.AnError})
	model := NewModel(context.Background(), store.New(src))
	newModel, _ := testutil.SendMessage(model, runFetch(t, model))
	model = newModel.(Model)
	require.NotEmpty(t, model.ErrorMessage())

	src.Set([]models.Project{testutil.SampleProject(5, "Five")}, nil)
	newModel, _ = testutil.SendMessage(model, runFetch(t, model))
	model = newModel.(Model)

	assert.Empty(t, model.ErrorMessage())
	require.Len(t, model.Items(), 1)
	assert.Equal(t, "Five", model.Items()[0].Name)
}

func TestModelUpdate_KeyHandling(t *testing.T) {
	t.Run("enter on empty list does nothing", func(t *testing.T) {
		model := NewModel(context.Background(), store.New(testutil.NewFakeSource(nil, nil)))
		newModel, cmd := testutil.SendMessage(model, testutil.SpecialKey(tea.KeyEnter))

		assert.IsType(t, Model{}, newModel)
		assert.Nil(t, cmd)
	})

	t.Run("enter opens the selected project", func(t *testing.T) {
		model, _ := newLoadedModel(t)
		_, cmd := testutil.SendMessage(model, testutil.SpecialKey(tea.KeyEnter))
		require.NotNil(t, cmd)

		msg := testutil.ExecuteCommand(cmd)
		require.IsType(t, messages.GoToProjectDetailMsg{}, msg)
		assert.Equal(t, 1, msg.(messages.GoToProjectDetailMsg).Project.ID)
	})

	t.Run("q key generates quit message", func(t *testing.T) {
		model, _ := newLoadedModel(t)
		_, cmd := testutil.SendMessage(model, testutil.KeyPress("q"))
		testutil.AssertQuitMessage(t, cmd)
	})

	t.Run("ctrl+c generates quit message", func(t *testing.T) {
		model, _ := newLoadedModel(t)
		_, cmd := testutil.SendMessage(model, tea.KeyMsg{Type: tea.KeyCtrlC})
		testutil.AssertQuitMessage(t, cmd)
	})

	t.Run("r triggers a fetch", func(t *testing.T) {
		model, src := newLoadedModel(t)
		before := src.Calls()

		_, cmd := testutil.SendMessage(model, testutil.KeyPress("r"))
		require.NotNil(t, cmd)
		msg := testutil.ExecuteCommand(cmd)

		assert.IsType(t, messages.FetchFinishedMsg{}, msg)
		assert.Equal(t, before+1, src.Calls())
	})
}

func TestModelView(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		model := NewModel(context.Background(), store.New(testutil.NewFakeSource(nil, nil)))
		model.SetSize(80, 24)
		testutil.AssertViewContains(t, model, "No projects yet.")
		testutil.AssertViewContains(t, model, "Total: 0 projects")
	})

	t.Run("small terminal keeps header", func(t *testing.T) {
		model := NewModel(context.Background(), store.New(testutil.NewFakeSource(nil, nil)))
		model.SetSize(30, 6)
		testutil.AssertViewContains(t, model, "Total: 0 projects")
	})

	t.Run("loaded projects", func(t *testing.T) {
		model, _ := newLoadedModel(t)
		testutil.AssertViewContains(t, model, "Inventory")
		testutil.AssertViewContains(t, model, "Total: 3 projects")
	})
}
