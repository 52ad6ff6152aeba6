package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileSinkPathNaming(t *testing.T) {
	f := newFileSink("/logs", "2026-08-25", false, 0, 0)
	if got := f.path(""); got != filepath.Join("/logs", "2026-08-25.txt") {
		t.Fatalf("main path = %q", got)
	}
	if got := f.path("_errors"); got != filepath.Join("/logs", "2026-08-25_errors.txt") {
		t.Fatalf("suffixed path = %q", got)
	}

	debug := newFileSink("/logs", "2026-08-25", true, 0, 0)
	if got := debug.path(""); got != filepath.Join("/logs", "2026-08-25_debug.txt") {
		t.Fatalf("debug path = %q", got)
	}
}

func TestFileSinkAppends(t *testing.T) {
	dir := t.TempDir()
	f := newFileSink(dir, "2026-08-25", false, 0, 0)

	if err := f.write([]string{"[ts] [INF] one"}, ""); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := f.write([]string{"[ts] [INF] two"}, ""); err != nil {
		t.Fatalf("write: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "2026-08-25.txt"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(content) != "[ts] [INF] one\n[ts] [INF] two\n" {
		t.Fatalf("content = %q", content)
	}
}

func TestFileSinkDualWrite(t *testing.T) {
	dir := t.TempDir()
	f := newFileSink(dir, "2026-08-25", false, 0, 0)

	if err := f.write([]string{"line"}, "_errors+"); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, name := range []string{"2026-08-25.txt", "2026-08-25_errors.txt"} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(content) != "line\n" {
			t.Fatalf("%s content = %q", name, content)
		}
	}
}

func TestFileSinkSuffixOnlyWrite(t *testing.T) {
	dir := t.TempDir()
	f := newFileSink(dir, "2026-08-25", false, 0, 0)

	if err := f.write([]string{"line"}, "_errors"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "2026-08-25.txt")); !os.IsNotExist(err) {
		t.Fatal("plain suffix must not write the main file")
	}
	if _, err := os.Stat(filepath.Join(dir, "2026-08-25_errors.txt")); err != nil {
		t.Fatalf("suffixed file missing: %v", err)
	}
}

func TestFileSinkRetryBackoff(t *testing.T) {
	dir := t.TempDir()
	// Occupy the log path with a directory so every append fails.
	blocked := filepath.Join(dir, "2026-08-25.txt")
	if err := os.MkdirAll(blocked, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	f := newFileSink(dir, "2026-08-25", false, 10, 50*time.Millisecond)
	var delays []time.Duration
	f.sleep = func(d time.Duration) { delays = append(delays, d) }

	err := f.write([]string{"line"}, "")
	if err == nil {
		t.Fatal("expected failure when the path is unwritable")
	}
	if !strings.Contains(err.Error(), "after 10 attempts") {
		t.Fatalf("error should report exhausted attempts: %v", err)
	}
	if !strings.Contains(err.Error(), blocked) {
		t.Fatalf("error should name the target path: %v", err)
	}

	want := []time.Duration{
		50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond,
		50 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond,
		800 * time.Millisecond,
	}
	if len(delays) != len(want) {
		t.Fatalf("expected %d sleeps, got %d (%v)", len(want), len(delays), delays)
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Fatalf("delay %d = %v, want %v", i, delays[i], want[i])
		}
	}
}
