// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import "github.com/amsot/portfolio/internal/store"

// FetchFinishedMsg is returned by the command that ran FetchProjects.
// Screens treat it like any store event and re-read the store.
type FetchFinishedMsg struct {
	Result store.Result
}
