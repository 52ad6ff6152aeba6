package logger

import (
	"strings"
	"testing"
	"time"
)

func TestFormatConsoleSingleLine(t *testing.T) {
	e := NewEntry("build finished", LevelInfo)
	got := formatConsole(e, false)
	if got != "[INF] build finished" {
		t.Fatalf("formatConsole = %q", got)
	}
}

func TestFormatConsoleVerboseNames(t *testing.T) {
	e := NewEntry("ready", LevelDebug)
	got := formatConsole(e, true)
	if got != "[Debug  ] ready" {
		t.Fatalf("formatConsole verbose = %q", got)
	}
	warn := formatConsole(NewEntry("careful", LevelWarning), true)
	if !strings.HasPrefix(warn, "[Warning] ") {
		t.Fatalf("warning prefix = %q", warn)
	}
	if strings.Index(got, "ready") != strings.Index(warn, "careful") {
		t.Fatal("verbose prefixes are not equal width")
	}
}

func TestFormatConsoleMultiLinePreservesContent(t *testing.T) {
	e := NewEntry("first\r\n  second\rthird", LevelError)
	got := formatConsole(e, false)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "[ERR] first" {
		t.Fatalf("line 1 = %q", lines[0])
	}
	// Continuation lines keep original spacing after the blank prefix.
	if lines[1] != "        second" {
		t.Fatalf("line 2 = %q", lines[1])
	}
	if lines[2] != "      third" {
		t.Fatalf("line 3 = %q", lines[2])
	}
}

func TestFormatFilePrefixAndTrim(t *testing.T) {
	ts := time.Date(2026, 8, 25, 13, 5, 9, 0, time.UTC)
	e := NewEntry("  padded  \nnext\n\nlast", LevelInfo)
	lines := formatFile(e, ts)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	want := "[2026-08-25 13:05:09] [INF] padded"
	if lines[0] != want {
		t.Fatalf("line 1 = %q, want %q", lines[0], want)
	}
	prefixWidth := len("[2026-08-25 13:05:09] [INF] ")
	for i, line := range lines[1:] {
		if !strings.HasPrefix(line, strings.Repeat(" ", prefixWidth)) {
			t.Fatalf("continuation line %d lacks blank prefix: %q", i+2, line)
		}
	}
	if strings.TrimSpace(lines[1]) != "next" {
		t.Fatalf("line 2 = %q", lines[1])
	}
	if strings.TrimSpace(lines[2]) != "" {
		t.Fatalf("line 3 = %q", lines[2])
	}
	if strings.TrimSpace(lines[3]) != "last" {
		t.Fatalf("line 4 = %q", lines[3])
	}
}

func TestSplitLinesHandlesAllBreaks(t *testing.T) {
	got := splitLines("a\r\nb\rc\nd")
	if len(got) != 4 {
		t.Fatalf("splitLines = %v", got)
	}
	for i, want := range []string{"a", "b", "c", "d"} {
		if got[i] != want {
			t.Fatalf("splitLines[%d] = %q, want %q", i, got[i], want)
		}
	}
}
