// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// CronLogAdapter adapts zerolog to robfig/cron's Logger interface
type CronLogAdapter struct {
	logger zerolog.Logger
}

// NewCronLogAdapter creates a new cron log adapter
func NewCronLogAdapter(logger zerolog.Logger) cron.Logger {
	return &CronLogAdapter{logger: logger}
}

// Info logs cron's routine messages (schedule, wake, run) at debug level;
// they fire on every tick and would drown the component's own info logs.
func (c *CronLogAdapter) Info(msg string, keysAndValues ...interface{}) {
	addFields(c.logger.Debug(), keysAndValues...).Msg(msg)
}

// Error logs at error level
func (c *CronLogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	addFields(c.logger.Error().Err(err), keysAndValues...).Msg(msg)
}

// addFields adds key-value pairs to a zerolog event
func addFields(event *zerolog.Event, keyvals ...interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		switch v := keyvals[i+1].(type) {
		case string:
			event = event.Str(key, v)
		case int:
			event = event.Int(key, v)
		case int64:
			event = event.Int64(key, v)
		case bool:
			event = event.Bool(key, v)
		case time.Time:
			event = event.Time(key, v)
		case time.Duration:
			event = event.Dur(key, v)
		case error:
			event = event.AnErr(key, v)
		default:
			event = event.Interface(key, v)
		}
	}
	if len(keyvals)%2 == 1 {
		event = event.Interface("extra", keyvals[len(keyvals)-1])
	}
	return event
}
