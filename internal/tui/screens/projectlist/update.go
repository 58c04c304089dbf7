// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package projectlist

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amsot/portfolio/internal/protocol"
	"github.com/amsot/portfolio/internal/tui/messages"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selectedItem := m.list.SelectedItem(); selectedItem != nil {
				if projectItem, ok := selectedItem.(ProjectItem); ok {
					return m, func() tea.Msg {
						return messages.GoToProjectDetailMsg{Project: projectItem.Project}
					}
				}
			}
			return m, nil

		case "r":
			return m, m.fetch()

		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case protocol.ProjectsFetchStartedEvent,
		protocol.ProjectsLoadedEvent,
		protocol.ProjectsFetchFailedEvent,
		messages.FetchFinishedMsg:
		m.sync()
		// the header may have grown or shrunk by the error line
		m.SetSize(m.width, m.height)
		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	// Update the list component
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}
