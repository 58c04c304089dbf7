// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amsot/portfolio/internal/logger"
	"github.com/amsot/portfolio/internal/protocol"
	"github.com/amsot/portfolio/internal/tui/screens/projectlist"
)

// Store is what the TUI needs from the projects store.
type Store interface {
	projectlist.ProjectStore
	Subscribe(buffer int) (<-chan protocol.Event, func())
}

// StartTUI initializes and runs the TUI application until the user quits
// or ctx is cancelled.
func StartTUI(ctx context.Context, st Store) error {
	mainModel := NewMainModel(ctx, st)

	events, unsubscribe := st.Subscribe(32)
	defer unsubscribe()

	p := tea.NewProgram(mainModel, tea.WithAltScreen(), tea.WithContext(ctx))

	// Forward store events so screens re-read the store as it changes
	go func() {
		for event := range events {
			p.Send(event)
		}
	}()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		log := logger.GetTUILogger()
		log.Info().Msg("TUI stopped by context")
		return nil
	}
	return err
}
