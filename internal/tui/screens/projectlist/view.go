// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package projectlist

import (
	"github.com/amsot/portfolio/internal/tui/layout"
)

// View renders the project list screen
func (m Model) View() string {
	layoutInfo := m.GetLayoutInfo()

	content := m.list.View()
	if m.total == 0 {
		switch {
		case m.loading:
			content = ""
		case m.errMsg == "":
			content = layout.StatsStyle.Render("No projects yet.")
		default:
			content = layout.StatsStyle.Render("No projects to show. Press r to try again.")
		}
	}
	return layout.RenderLayout(content, layoutInfo, m.width, m.height)
}
