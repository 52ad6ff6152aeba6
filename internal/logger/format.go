package logger

import (
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// splitLines splits a message on any of the line-break sequences \r\n, \r,
// and \n, preserving line content.
func splitLines(message string) []string {
	normalized := strings.ReplaceAll(message, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n")
}

// formatConsole renders the console variant: the first line carries the level
// prefix, continuation lines a blank prefix of equal width. Line content is
// left untrimmed.
func formatConsole(e Entry, verboseNames bool) string {
	var prefix string
	if verboseNames {
		prefix = "[" + e.Level.PaddedName() + "] "
	} else {
		prefix = "[" + e.Level.Code() + "] "
	}
	pad := strings.Repeat(" ", len(prefix))

	lines := splitLines(e.Message)
	var b strings.Builder
	b.Grow(len(e.Message) + len(lines)*len(prefix))
	for i, line := range lines {
		if i == 0 {
			b.WriteString(prefix)
		} else {
			b.WriteByte('\n')
			b.WriteString(pad)
		}
		b.WriteString(line)
	}
	return b.String()
}

// formatFile renders the file variant: a dated level prefix on the first
// line, blank padding on continuation lines, each line trimmed.
func formatFile(e Entry, ts time.Time) []string {
	prefix := "[" + ts.Format(timestampLayout) + "] [" + e.Level.Code() + "] "
	pad := strings.Repeat(" ", len(prefix))

	raw := splitLines(e.Message)
	lines := make([]string, 0, len(raw))
	for i, line := range raw {
		trimmed := strings.TrimSpace(line)
		if i == 0 {
			lines = append(lines, prefix+trimmed)
			continue
		}
		lines = append(lines, pad+trimmed)
	}
	return lines
}
