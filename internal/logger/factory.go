// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"github.com/rs/zerolog"
)

// Component names match the keys of log.levels in config.yaml.

// GetStoreLogger returns a logger for the projects store
func GetStoreLogger() zerolog.Logger {
	return GetLogger("store")
}

// GetWordPressLogger returns a logger for the WordPress API client
func GetWordPressLogger() zerolog.Logger {
	return GetLogger("wordpress")
}

// GetAPILogger returns a logger for the REST/WebSocket server
func GetAPILogger() zerolog.Logger {
	return GetLogger("api")
}

// GetTUILogger returns a logger for TUI components
func GetTUILogger() zerolog.Logger {
	return GetLogger("tui")
}

// GetCLILogger returns a logger for CLI commands
func GetCLILogger() zerolog.Logger {
	return GetLogger("cli")
}

// GetSchedulerLogger returns a logger for scheduled refreshes
func GetSchedulerLogger() zerolog.Logger {
	return GetLogger("scheduler")
}
