// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amsot/portfolio/internal/logger"
	"github.com/amsot/portfolio/internal/protocol"
	"github.com/amsot/portfolio/internal/tui/messages"
	"github.com/amsot/portfolio/internal/tui/screens/projectdetail"
	"github.com/amsot/portfolio/internal/tui/screens/projectlist"
)

// ScreenType represents the current active screen
type ScreenType int

const (
	ProjectListScreen ScreenType = iota
	ProjectDetailScreen
)

type MainModel struct {
	// Current screen state
	currentScreen ScreenType
	// Screen history for back navigation
	screenHistory []ScreenType

	// Individual screen models
	projectList   projectlist.Model
	projectDetail projectdetail.Model

	// Global state
	width, height int
}

// NewMainModel creates a new MainModel with the project list as the initial screen
func NewMainModel(ctx context.Context, st projectlist.ProjectStore) MainModel {
	return MainModel{
		currentScreen: ProjectListScreen,
		screenHistory: []ScreenType{},
		projectList:   projectlist.NewModel(ctx, st),
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.projectList.Init()
}

// CurrentScreen returns the screen being shown
func (m MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// setSize updates the size for the current screen
func (m *MainModel) setSize(width, height int) {
	m.width = width
	m.height = height
	switch m.currentScreen {
	case ProjectListScreen:
		m.projectList.SetSize(width, height)
	case ProjectDetailScreen:
		m.projectDetail.SetSize(width, height)
	}
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size messages at the top level
	if windowSize, ok := msg.(tea.WindowSizeMsg); ok {
		m.setSize(windowSize.Width, windowSize.Height)
		return m, nil
	}

	// Handle Navigation Messages First (these return early to avoid screen delegation)
	switch msg := msg.(type) {
	case messages.GoToProjectDetailMsg:
		m.screenHistory = append(m.screenHistory, m.currentScreen)
		m.projectDetail = projectdetail.NewModel(msg.Project)
		m.projectDetail.SetSize(m.width, m.height)
		m.currentScreen = ProjectDetailScreen
		return m, m.projectDetail.Init()

	case messages.GoBackMsg:
		// Pop from history if available
		if len(m.screenHistory) > 0 {
			m.currentScreen = m.screenHistory[len(m.screenHistory)-1]
			m.screenHistory = m.screenHistory[:len(m.screenHistory)-1]
			m.setSize(m.width, m.height) // Refresh size for the screen we're going back to
		}
		return m, nil
	}

	if event, ok := msg.(protocol.Event); ok {
		log := logger.GetTUILogger()
		log.Debug().
			Str("event", protocol.EventName(event)).
			Str("fetch_id", event.GetMetadata().FetchID).
			Str("currentScreen", screenName(m.currentScreen)).
			Msg("Store event received")
	}

	var cmds []tea.Cmd

	// The list follows the store on every screen so going back shows
	// current data. Key presses only go to the screen in front.
	_, isKey := msg.(tea.KeyMsg)
	if !isKey || m.currentScreen == ProjectListScreen {
		model, cmd := m.projectList.Update(msg)
		m.projectList = model.(projectlist.Model)
		cmds = append(cmds, cmd)
	}

	if m.currentScreen == ProjectDetailScreen {
		model, cmd := m.projectDetail.Update(msg)
		m.projectDetail = model.(projectdetail.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m MainModel) View() string {
	switch m.currentScreen {
	case ProjectListScreen:
		return m.projectList.View()
	case ProjectDetailScreen:
		return m.projectDetail.View()
	default:
		return "Unknown screen"
	}
}

// screenName returns a string representation of the screen type for logging
func screenName(s ScreenType) string {
	switch s {
	case ProjectListScreen:
		return "ProjectList"
	case ProjectDetailScreen:
		return "ProjectDetail"
	default:
		return "Unknown"
	}
}
