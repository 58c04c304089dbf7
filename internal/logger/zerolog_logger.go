// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/amsot/portfolio/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Manager owns the configured writers and hands out one logger per component.
type Manager struct {
	cfg        *config.LogConfig
	root       zerolog.Logger
	mu         sync.RWMutex
	components map[string]zerolog.Logger
	closers    []io.Closer
}

// NewManager builds the writers described by cfg and a root logger on top of them.
func NewManager(cfg *config.LogConfig) (*Manager, error) {
	m := &Manager{
		cfg:        cfg,
		components: make(map[string]zerolog.Logger),
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	writers, err := m.openWriters()
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("failed to create log writers: %w", err)
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		// Nothing enabled: keep quiet rather than write to the terminal.
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	m.root = m.decorate(zerolog.New(out).Level(level))
	return m, nil
}

func (m *Manager) openWriters() ([]io.Writer, error) {
	var writers []io.Writer

	for _, output := range m.cfg.Output {
		if !output.Enabled {
			continue
		}

		switch output.Type {
		case "console":
			if m.cfg.Format == "console" {
				writers = append(writers, consoleWriter(os.Stderr, "15:04:05.000", false))
			} else {
				writers = append(writers, os.Stderr)
			}

		case "file":
			w, err := m.openFile(output)
			if err != nil {
				return nil, err
			}
			if m.cfg.Format == "console" {
				writers = append(writers, consoleWriter(w, "2006-01-02 15:04:05.000", true))
			} else {
				writers = append(writers, w)
			}

		default:
			return nil, fmt.Errorf("unsupported output type: %s", output.Type)
		}
	}

	return writers, nil
}

func (m *Manager) openFile(output config.LogOutputConfig) (io.Writer, error) {
	if output.Path == "" {
		return nil, fmt.Errorf("file output requires a path")
	}
	if err := os.MkdirAll(filepath.Dir(output.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	if output.Rotate.MaxSizeMB > 0 {
		lj := &lumberjack.Logger{
			Filename:   output.Path,
			MaxSize:    output.Rotate.MaxSizeMB,
			MaxBackups: output.Rotate.MaxBackups,
			MaxAge:     output.Rotate.MaxAgeDays,
			Compress:   output.Rotate.Compress,
		}
		m.closers = append(m.closers, lj)
		return lj, nil
	}

	f, err := os.OpenFile(output.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", output.Path, err)
	}
	m.closers = append(m.closers, f)
	return f, nil
}

func consoleWriter(out io.Writer, timeFormat string, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat,
		NoColor:    noColor,
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		},
	}
}

// decorate applies timestamp, caller and sampling settings.
func (m *Manager) decorate(l zerolog.Logger) zerolog.Logger {
	if m.cfg.Context.IncludeTimestamp {
		l = l.With().Timestamp().Logger()
	}
	if m.cfg.Context.IncludeCaller {
		l = l.With().Caller().Logger()
	}
	if m.cfg.Sampling.Enabled {
		l = l.Sample(&zerolog.BurstSampler{
			Burst:       m.cfg.Sampling.Initial,
			Period:      m.cfg.Sampling.Tick,
			NextSampler: &zerolog.BasicSampler{N: m.cfg.Sampling.Thereafter},
		})
	}
	return l
}

// GetLogger returns the logger for a component, tagged with "component".
// The level comes from log.levels[component], falling back to log.level.
func (m *Manager) GetLogger(component string) zerolog.Logger {
	m.mu.RLock()
	l, ok := m.components[component]
	m.mu.RUnlock()
	if ok {
		return l
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.components[component]; ok {
		return l
	}

	level := parseLevel(m.cfg.Level)
	if lvl, ok := m.cfg.Levels[component]; ok {
		level = parseLevel(lvl)
	}
	l = m.root.With().Str("component", component).Logger().Level(level)
	m.components[component] = l
	return l
}

// SetComponentLevel changes the level of one component at runtime.
func (m *Manager) SetComponentLevel(component, level string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.Levels == nil {
		m.cfg.Levels = make(map[string]string)
	}
	m.cfg.Levels[component] = level

	if l, ok := m.components[component]; ok {
		m.components[component] = l.Level(parseLevel(level))
	}
}

// Close flushes and closes every file writer.
func (m *Manager) Close() error {
	var firstErr error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "FATAL":
		return zerolog.FatalLevel
	case "PANIC":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

var (
	globalMu      sync.RWMutex
	globalManager *Manager
)

// Initialize installs the process-wide manager. Calling it again replaces
// the previous manager and closes its writers.
func Initialize(cfg *config.LogConfig) error {
	m, err := NewManager(cfg)
	if err != nil {
		return err
	}

	globalMu.Lock()
	prev := globalManager
	globalManager = m
	globalMu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// GetLogger returns a component logger from the global manager, or a
// discarding logger when Initialize has not been called.
func GetLogger(component string) zerolog.Logger {
	globalMu.RLock()
	m := globalManager
	globalMu.RUnlock()

	if m == nil {
		return zerolog.New(io.Discard)
	}
	return m.GetLogger(component)
}

// CloseGlobal closes the global manager's writers.
func CloseGlobal() error {
	globalMu.Lock()
	m := globalManager
	globalManager = nil
	globalMu.Unlock()

	if m == nil {
		return nil
	}
	return m.Close()
}
