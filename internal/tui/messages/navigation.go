// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import "github.com/amsot/portfolio/internal/models"

// Navigation messages for screen transitions within the TUI
type GoBackMsg struct{}

type GoToProjectDetailMsg struct {
	Project models.Project
}
