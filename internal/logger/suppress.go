package logger

import (
	"sync"
	"time"
)

// suppressor tracks the most recently emitted message so identical messages
// inside a caller-specified window are discarded.
type suppressor struct {
	mu      sync.Mutex
	lastMsg string
	lastAt  time.Time
}

// shouldSuppress reports whether message should be discarded. A window <= 0
// never suppresses. A suppressed message does not refresh the stored state,
// so a steady stream of duplicates stays quiet only until the window since
// the first emission elapses.
func (s *suppressor) shouldSuppress(message string, window time.Duration, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if window > 0 && message == s.lastMsg && !s.lastAt.IsZero() && now.Sub(s.lastAt) < window {
		return true
	}
	s.lastMsg = message
	s.lastAt = now
	return false
}
