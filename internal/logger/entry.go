package logger

import "time"

// Entry describes one log event. Entries are built by NewEntry (or the Log
// convenience calls) and are immutable once handed to the queue; the consumer
// never mutates them.
type Entry struct {
	// Message is the payload text and may contain embedded line breaks.
	Message string
	// Level decides routing against the per-sink thresholds.
	Level Level
	// Print marks the entry eligible for the console sink.
	Print bool
	// WriteToFile marks the entry eligible for the file sink.
	WriteToFile bool
	// PrintWithBreak ends console output with a line break. Leaving it off
	// keeps the cursor on the line so the next write can overwrite it.
	PrintWithBreak bool
	// CustomColor overrides the level color on the console. Unknown names
	// fall back to the level default.
	CustomColor string
	// ShowTwiceTimeout suppresses re-emission of an identical message inside
	// this window. Zero disables suppression for the entry.
	ShowTwiceTimeout time.Duration
	// ReplaceWildcard is a glob pattern; when both the previous console line
	// and this message match it, the console write replaces the previous
	// line instead of appending.
	ReplaceWildcard string
	// FileSuffix selects an auxiliary log file. Empty means the main file;
	// a trailing "+" writes to both the main and the suffixed file.
	FileSuffix string

	skip bool
}

// Option mutates an Entry during construction.
type Option func(*Entry)

// NewEntry builds an Entry with both sinks enabled and a trailing line break.
func NewEntry(message string, level Level, opts ...Option) Entry {
	e := Entry{
		Message:        message,
		Level:          level,
		Print:          true,
		WriteToFile:    true,
		PrintWithBreak: true,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// ConsoleOnly routes the entry to the console sink only.
func ConsoleOnly() Option {
	return func(e *Entry) { e.WriteToFile = false }
}

// FileOnly routes the entry to the file sink only.
func FileOnly() Option {
	return func(e *Entry) { e.Print = false }
}

// WithColor overrides the console color with a named color.
func WithColor(name string) Option {
	return func(e *Entry) { e.CustomColor = name }
}

// WithoutBreak keeps the console cursor on the written line.
func WithoutBreak() Option {
	return func(e *Entry) { e.PrintWithBreak = false }
}

// WithShowTwiceTimeout sets the duplicate suppression window.
func WithShowTwiceTimeout(window time.Duration) Option {
	return func(e *Entry) {
		if window > 0 {
			e.ShowTwiceTimeout = window
		}
	}
}

// WithReplaceWildcard enables replace-last-line mode for console writes whose
// previous and current messages both match pattern.
func WithReplaceWildcard(pattern string) Option {
	return func(e *Entry) { e.ReplaceWildcard = pattern }
}

// WithFileSuffix selects the auxiliary log file. A trailing "+" writes the
// entry to both the main and the suffixed file.
func WithFileSuffix(suffix string) Option {
	return func(e *Entry) { e.FileSuffix = suffix }
}

// When drops the entry entirely if cond is false.
func When(cond bool) Option {
	return func(e *Entry) {
		if !cond {
			e.skip = true
		}
	}
}
