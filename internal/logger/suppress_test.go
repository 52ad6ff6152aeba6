package logger

import (
	"testing"
	"time"
)

func TestSuppressorWithinWindow(t *testing.T) {
	var s suppressor
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	if s.shouldSuppress("same", time.Second, base) {
		t.Fatal("first emission must not be suppressed")
	}
	if !s.shouldSuppress("same", time.Second, base.Add(100*time.Millisecond)) {
		t.Fatal("identical message 100ms later should be suppressed")
	}
}

func TestSuppressorOutsideWindow(t *testing.T) {
	var s suppressor
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	s.shouldSuppress("same", time.Second, base)
	if s.shouldSuppress("same", time.Second, base.Add(1100*time.Millisecond)) {
		t.Fatal("identical message after the window should pass")
	}
}

func TestSuppressorZeroWindowNeverSuppresses(t *testing.T) {
	var s suppressor
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	s.shouldSuppress("same", 0, base)
	if s.shouldSuppress("same", 0, base) {
		t.Fatal("zero window must never suppress")
	}
}

func TestSuppressorDifferentMessagePasses(t *testing.T) {
	var s suppressor
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	s.shouldSuppress("one", time.Second, base)
	if s.shouldSuppress("two", time.Second, base.Add(10*time.Millisecond)) {
		t.Fatal("different message must pass")
	}
}

func TestSuppressedMessageDoesNotRefreshWindow(t *testing.T) {
	var s suppressor
	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	s.shouldSuppress("same", time.Second, base)
	if !s.shouldSuppress("same", time.Second, base.Add(900*time.Millisecond)) {
		t.Fatal("second emission inside window should be suppressed")
	}
	// The suppressed emission must not have reset the clock: the window is
	// measured from the first emission, which is now past.
	if s.shouldSuppress("same", time.Second, base.Add(1050*time.Millisecond)) {
		t.Fatal("window measured from suppressed emission instead of first")
	}
}
