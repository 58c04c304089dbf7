// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package scrollablecard

import (
	"github.com/amsot/portfolio/internal/tui/components/card"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a bordered card whose body scrolls inside a viewport
type Model struct {
	title    string
	viewport viewport.Model
	style    card.Style
}

// New creates a scrollable card whose outer size is width x height
func New(title, content string, width, height int) Model {
	m := Model{
		title:    title,
		viewport: viewport.New(0, 0),
		style:    card.DefaultStyle(),
	}
	m.SetSize(width, height)
	m.viewport.SetContent(content)
	return m
}

// Update forwards scroll keys and mouse wheel events to the viewport
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the card
func (m Model) View() string {
	return card.Render(m.title, m.viewport.View(), m.style)
}

// SetSize fits the card, border and title included, into width x height
func (m *Model) SetSize(width, height int) {
	frameW, frameH := card.FrameSize(m.style)
	if m.title != "" {
		frameH++
	}
	m.viewport.Width = max(width-frameW, 1)
	m.viewport.Height = max(height-frameH, 1)
}

// SetContent replaces the card body and keeps the scroll position when possible
func (m *Model) SetContent(content string) {
	m.viewport.SetContent(content)
}

// ContentWidth is the width available to the body text
func (m Model) ContentWidth() int {
	return m.viewport.Width
}

// ScrollPercent returns the current scroll percentage (0.0 to 1.0)
func (m Model) ScrollPercent() float64 {
	return m.viewport.ScrollPercent()
}
