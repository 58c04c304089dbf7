// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package projectdetail

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amsot/portfolio/internal/models"
	"github.com/amsot/portfolio/internal/protocol"
	"github.com/amsot/portfolio/internal/tui/messages"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return messages.GoBackMsg{} }
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case protocol.ProjectsLoadedEvent:
		// keep showing the old copy when the project disappeared upstream
		if p, ok := models.FindProject(msg.Projects, m.project.ID); ok {
			m.SetProject(p)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}
