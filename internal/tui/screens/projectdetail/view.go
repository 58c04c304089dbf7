// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package projectdetail

import (
	"github.com/amsot/portfolio/internal/tui/layout"
)

// View renders the project detail screen
func (m Model) View() string {
	return layout.RenderLayout(m.body.View(), m.GetLayoutInfo(), m.width, m.height)
}
