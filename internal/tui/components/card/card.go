// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package card

import (
	"github.com/charmbracelet/lipgloss"
)

// Style defines the visual appearance of a card
type Style struct {
	BorderColor lipgloss.Color
	BorderStyle lipgloss.Border
	Padding     []int // [top, right, bottom, left]
	TitleColor  lipgloss.Color
	TitleBold   bool
	Width       int // 0 = auto
}

// DefaultStyle returns the card style used across screens
func DefaultStyle() Style {
	return Style{
		BorderColor: lipgloss.Color("86"),
		BorderStyle: lipgloss.RoundedBorder(),
		Padding:     []int{0, 1, 0, 1},
		TitleColor:  lipgloss.Color("86"),
		TitleBold:   true,
	}
}

// FrameSize returns the horizontal and vertical space the border and
// padding of style take up, so callers can size content to fit.
func FrameSize(style Style) (width, height int) {
	width, height = 2, 2 // border
	if len(style.Padding) == 4 {
		width += style.Padding[1] + style.Padding[3]
		height += style.Padding[0] + style.Padding[2]
	}
	return width, height
}

// Render creates a bordered card with optional title
func Render(title, content string, style Style) string {
	body := content
	if title != "" {
		titleRendered := lipgloss.NewStyle().
			Foreground(style.TitleColor).
			Bold(style.TitleBold).
			Render(title)
		body = lipgloss.JoinVertical(lipgloss.Left, titleRendered, content)
	}

	paddedStyle := lipgloss.NewStyle()
	if len(style.Padding) == 4 {
		paddedStyle = paddedStyle.Padding(style.Padding[0], style.Padding[1], style.Padding[2], style.Padding[3])
	}

	borderStyle := lipgloss.NewStyle().
		Border(style.BorderStyle).
		BorderForeground(style.BorderColor)
	if style.Width > 0 {
		borderStyle = borderStyle.Width(style.Width)
	}

	return borderStyle.Render(paddedStyle.Render(body))
}
