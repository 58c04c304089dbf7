// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"
)

// HelpItem represents a single help entry
type HelpItem struct {
	Key         string
	Description string
}

// RenderHeader creates a header with title, breadcrumbs, and the optional
// status and error lines
func RenderHeader(info LayoutInfo, width int) string {
	var header strings.Builder

	// Title and breadcrumbs on the same line
	titleLine := TitleStyle.Render(info.Title)
	if len(info.Breadcrumbs) > 1 {
		breadcrumbText := strings.Join(info.Breadcrumbs, BreadcrumbSeparator.String())
		titleLine += "  " + BreadcrumbStyle.Render(breadcrumbText)
	}

	header.WriteString(titleLine)

	if info.Status != "" {
		header.WriteString("\n")
		header.WriteString(StatsStyle.Render(info.Status))
	}

	if info.Error != "" {
		header.WriteString("\n")
		header.WriteString(ErrorStyle.Width(width).Render("Error: " + info.Error))
	}

	// Add divider
	header.WriteString("\n")
	header.WriteString(GetDivider(width))

	return header.String()
}

// RenderFooter creates a footer with help items
func RenderFooter(helpItems []HelpItem, width int) string {
	if len(helpItems) == 0 {
		return ""
	}

	var footer strings.Builder

	// Add divider
	footer.WriteString(GetDivider(width))
	footer.WriteString("\n")

	// Format help items
	var helpTexts []string
	for _, item := range helpItems {
		helpText := fmt.Sprintf("[%s] %s",
			HelpKeyStyle.Render(item.Key),
			HelpTextStyle.Render(item.Description))
		helpTexts = append(helpTexts, helpText)
	}

	// Join help items with bullets, lipgloss handles wrapping
	helpLine := strings.Join(helpTexts, " • ")
	footer.WriteString(FooterStyle.Width(width).Render(helpLine))

	return footer.String()
}
