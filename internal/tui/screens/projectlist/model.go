// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package projectlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amsot/portfolio/internal/models"
	"github.com/amsot/portfolio/internal/store"
	"github.com/amsot/portfolio/internal/tui/layout"
	"github.com/amsot/portfolio/internal/tui/messages"
)

// ProjectStore is what the screen reads and drives.
type ProjectStore interface {
	Snapshot() store.Snapshot
	FetchProjects(ctx context.Context) store.Result
}

// ProjectItem represents a project in the list
type ProjectItem struct {
	Project   models.Project
	Name      string
	TagLine   string
	Languages []string
}

func newProjectItem(p models.Project) ProjectItem {
	return ProjectItem{
		Project:   p,
		Name:      p.PlainTitle(),
		TagLine:   p.Fields.TagLine,
		Languages: p.Fields.LanguageNames(),
	}
}

// FilterValue returns the value to filter against
func (p ProjectItem) FilterValue() string {
	return p.Name
}

// Title returns the project name
func (p ProjectItem) Title() string {
	return p.Name
}

// Description returns the tag line followed by the languages, if any
func (p ProjectItem) Description() string {
	if len(p.Languages) == 0 {
		return p.TagLine
	}
	langs := strings.Join(p.Languages, ", ")
	if p.TagLine == "" {
		return langs
	}
	return p.TagLine + " · " + langs
}

// String returns a string representation of the project item
func (p ProjectItem) String() string {
	return fmt.Sprintf("%s: %s", p.Name, p.Description())
}

// Model is the model for the project list screen. It holds no project
// state of its own: every store event re-reads the store snapshot.
type Model struct {
	ctx     context.Context
	store   ProjectStore
	list    list.Model
	spinner spinner.Model

	loading bool
	errMsg  string
	total   int
	width   int
	height  int
}

// NewModel creates a new project list model
func NewModel(ctx context.Context, st ProjectStore) Model {
	// Create list with standard configuration
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 50, 10)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowTitle(false)

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(layout.SpinnerStyle),
	)

	m := Model{
		ctx:     ctx,
		store:   st,
		list:    l,
		spinner: s,
		width:   50,
		height:  10,
	}
	m.sync()
	return m
}

// Init fetches the projects as soon as the screen is shown.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// fetch runs FetchProjects off the UI goroutine. Loading and error changes
// reach the screen through store events; the returned message only marks
// the end of this particular call.
func (m Model) fetch() tea.Cmd {
	ctx, st := m.ctx, m.store
	return func() tea.Msg {
		return messages.FetchFinishedMsg{Result: st.FetchProjects(ctx)}
	}
}

// sync copies the store snapshot into the list and status fields.
func (m *Model) sync() {
	snap := m.store.Snapshot()
	m.loading = snap.Loading
	m.errMsg = snap.Error
	m.total = len(snap.Projects)

	items := make([]list.Item, 0, len(snap.Projects))
	for _, p := range snap.Projects {
		items = append(items, newProjectItem(p))
	}
	m.list.SetItems(items)
}

// GetLayoutInfo returns layout information for the project list screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	status := fmt.Sprintf("Total: %d projects", m.total)
	if m.loading {
		status = m.spinner.View() + " Loading projects..."
	}

	helpItems := []layout.HelpItem{
		{Key: "enter", Description: "details"},
		{Key: "r", Description: "refresh"},
		{Key: "q", Description: "quit"},
	}

	return layout.LayoutInfo{
		Title:       "Projects",
		Breadcrumbs: []string{"Projects"},
		Status:      status,
		Error:       m.errMsg,
		HelpItems:   helpItems,
	}
}

// SetSize updates the model's dimensions and list size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// Calculate content area and update list size
	layoutInfo := m.GetLayoutInfo()
	w, h := layout.ContentArea(layoutInfo, width, height)
	m.list.SetWidth(w)
	m.list.SetHeight(h)
}

// Loading reports whether the screen currently shows the spinner.
func (m Model) Loading() bool {
	return m.loading
}

// ErrorMessage returns the error line shown under the status, if any.
func (m Model) ErrorMessage() string {
	return m.errMsg
}

// Items returns the projects currently listed.
func (m Model) Items() []ProjectItem {
	out := make([]ProjectItem, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if p, ok := it.(ProjectItem); ok {
			out = append(out, p)
		}
	}
	return out
}
