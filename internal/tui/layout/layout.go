// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// LayoutInfo describes the chrome drawn around a screen's content.
type LayoutInfo struct {
	Title       string
	Breadcrumbs []string
	Status      string
	// Error is shown under the status line and does not replace the content.
	Error     string
	HelpItems []HelpItem
}

// frame renders header and footer and returns them with the rows left over
// for content, never less than one.
func frame(info LayoutInfo, width, height int) (header, footer string, contentHeight int) {
	header = RenderHeader(info, width)
	if len(info.HelpItems) > 0 {
		footer = RenderFooter(info.HelpItems, width)
	}
	contentHeight = max(height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	return header, footer, contentHeight
}

// RenderLayout stacks header, content and footer. Content taller than the
// remaining rows is cut off.
func RenderLayout(content string, info LayoutInfo, width, height int) string {
	header, footer, contentHeight := frame(info, width, height)

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Align(lipgloss.Left, lipgloss.Top).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// ContentArea returns the width and height left for content once info's
// header and footer are drawn.
func ContentArea(info LayoutInfo, width, height int) (int, int) {
	_, _, contentHeight := frame(info, width, height)
	return width, contentHeight
}
