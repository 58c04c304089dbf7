// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package projectdetail

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amsot/portfolio/internal/models"
	"github.com/amsot/portfolio/internal/protocol"
	"github.com/amsot/portfolio/internal/tui/messages"
	"github.com/amsot/portfolio/test/testutil"
)

func sized(m Model) Model {
	m.SetSize(120, 40)
	return m
}

func TestView_FullProject(t *testing.T) {
	model := sized(NewModel(testutil.SampleProjects()[1]))

	testutil.AssertViewContains(t, model, "Amsot – Web")
	testutil.AssertViewContains(t, model, "Company site")
	testutil.AssertViewContains(t, model, "Vue")
	testutil.AssertViewContains(t, model, "PHP")
	testutil.AssertViewContains(t, model, "Built with Vue.")
	testutil.AssertViewContains(t, model, "Gallery (2)")
	testutil.AssertViewContains(t, model, "Home page")
	// the medium rendition is preferred, the original is the fallback
	testutil.AssertViewContains(t, model, "home-300x200.png")
	testutil.AssertViewContains(t, model, "contact.png")
}

func TestView_EmptyRepeaters(t *testing.T) {
	model := sized(NewModel(testutil.SampleProjects()[0]))
	view := model.View()

	assert.Contains(t, view, "Demo")
	assert.NotContains(t, view, "Languages")
	assert.NotContains(t, view, "Gallery")
}

func TestView_GalleryIDsOnly(t *testing.T) {
	p := testutil.SampleProject(4, "Ids")
	p.Fields.Gallery = models.ListOf(10, 11)

	model := sized(NewModel(p))
	testutil.AssertViewContains(t, model, "Gallery (2)")
	testutil.AssertViewContains(t, model, "#10, #11")
}

func TestView_NoDescription(t *testing.T) {
	p := testutil.SampleProject(4, "Bare")
	p.Fields.Description = ""

	model := sized(NewModel(p))
	testutil.AssertViewContains(t, model, "No description.")
}

func TestUpdate_Keys(t *testing.T) {
	model := sized(NewModel(testutil.SampleProjects()[0]))

	_, cmd := testutil.SendMessage(model, testutil.SpecialKey(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.IsType(t, messages.GoBackMsg{}, testutil.ExecuteCommand(cmd))

	_, cmd = testutil.SendMessage(model, testutil.KeyPress("q"))
	testutil.AssertQuitMessage(t, cmd)
}

func TestUpdate_ProjectsLoadedRefreshesProject(t *testing.T) {
	model := sized(NewModel(testutil.SampleProject(3, "Old title")))

	newModel, _ := testutil.SendMessage(model, protocol.ProjectsLoadedEvent{
		Projects: []models.Project{testutil.SampleProject(3, "New title")},
	})
	testutil.AssertViewContains(t, newModel, "New title")

	// a refresh that no longer contains the project keeps the last copy
	newModel, _ = testutil.SendMessage(newModel, protocol.ProjectsLoadedEvent{Projects: []models.Project{}})
	testutil.AssertViewContains(t, newModel, "New title")
	assert.Equal(t, 3, newModel.(Model).ProjectID())
}
