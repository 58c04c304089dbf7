// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"github.com/amsot/portfolio/internal/protocol"
)

// Subscribe registers a listener for store events. The returned func
// unsubscribes and closes the channel; calling it more than once is safe.
// A subscriber whose buffer is full misses events instead of stalling a fetch.
func (s *Store) Subscribe(buffer int) (<-chan protocol.Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan protocol.Event, buffer)

	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	s.subMu.Unlock()

	unsubscribe := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if c, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(c)
		}
	}
	return ch, unsubscribe
}

func (s *Store) publish(event protocol.Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for id, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
			getLog().Warn().
				Int("subscriber", id).
				Str("event", protocol.EventName(event)).
				Msg("Subscriber buffer full, dropping event")
		}
	}
}
