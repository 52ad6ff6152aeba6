package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// styledLine is a console line plus its color tag. Styling is carried as a
// value so no shared terminal color state exists anywhere in the pipeline.
type styledLine struct {
	text     string
	color    text.Color
	hasColor bool
}

func (s styledLine) render(colorize bool) string {
	if colorize && s.hasColor {
		return s.color.Sprint(s.text)
	}
	return s.text
}

// consoleSink writes formatted entries to the interactive terminal. Only the
// consumer goroutine calls write, so the last-line bookkeeping needs no lock.
type consoleSink struct {
	out          io.Writer
	colorize     bool
	hub          *Hub
	sessionID    string
	lastRaw      string
	lastHadBreak bool
	width        func() int
}

func newConsoleSink(out io.Writer, colorize bool, hub *Hub, sessionID string) *consoleSink {
	if out == nil {
		out = os.Stdout
	}
	return &consoleSink{
		out:       out,
		colorize:  colorize,
		hub:       hub,
		sessionID: sessionID,
		width:     terminalWidth(out),
	}
}

func (c *consoleSink) write(e Entry, formatted string, ts time.Time) error {
	replace := c.shouldReplace(e)

	line := styledLine{text: formatted}
	line.color, line.hasColor = colorFor(e)

	var control string
	if replace {
		if width := c.width(); width > 1 {
			line.text = truncateLine(line.text, width-1)
		}
		if c.lastHadBreak {
			// Previous write ended the line; climb back up before clearing.
			control = "\x1b[1A\x1b[2K\r"
		} else {
			control = "\r\x1b[2K"
		}
	}

	payload := control + line.render(c.colorize)
	if e.PrintWithBreak {
		payload += "\n"
	}

	if _, err := io.WriteString(c.out, payload); err != nil {
		return err
	}

	c.lastRaw = e.Message
	c.lastHadBreak = e.PrintWithBreak
	c.hub.Publish(Event{
		Timestamp: ts,
		SessionID: c.sessionID,
		Level:     e.Level.String(),
		Raw:       e.Message,
		Formatted: formatted,
	})
	return nil
}

// diagnostic writes a plain line directly to the terminal, bypassing the
// queue. Used when the file sink gives up so the failure is still visible.
func (c *consoleSink) diagnostic(message string) {
	fmt.Fprintln(c.out, "scrawl: "+message)
}

// shouldReplace reports whether this write may overwrite the previous console
// line: the wildcard must match both the previous and the current message.
// With no recorded previous line (first write) the answer is always append.
func (c *consoleSink) shouldReplace(e Entry) bool {
	if e.ReplaceWildcard == "" || c.lastRaw == "" {
		return false
	}
	return globMatch(e.ReplaceWildcard, c.lastRaw) && globMatch(e.ReplaceWildcard, e.Message)
}

func globMatch(pattern, value string) bool {
	ok, err := doublestar.Match(pattern, value)
	return err == nil && ok
}

func colorFor(e Entry) (text.Color, bool) {
	if e.CustomColor != "" {
		if color, ok := parseColor(e.CustomColor); ok {
			return color, true
		}
	}
	return levelColor(e.Level)
}

func levelColor(lvl Level) (text.Color, bool) {
	switch lvl {
	case LevelDebug:
		return text.FgHiBlack, true
	case LevelVerbose:
		return text.FgCyan, true
	case LevelInfo:
		return text.FgWhite, true
	case LevelWarning:
		return text.FgYellow, true
	case LevelError:
		return text.FgRed, true
	case LevelForce:
		return text.FgHiMagenta, true
	default:
		return 0, false
	}
}

var namedColors = map[string]text.Color{
	"black":      text.FgBlack,
	"red":        text.FgRed,
	"green":      text.FgGreen,
	"yellow":     text.FgYellow,
	"blue":       text.FgBlue,
	"magenta":    text.FgMagenta,
	"cyan":       text.FgCyan,
	"white":      text.FgWhite,
	"gray":       text.FgHiBlack,
	"grey":       text.FgHiBlack,
	"hi-red":     text.FgHiRed,
	"hi-green":   text.FgHiGreen,
	"hi-yellow":  text.FgHiYellow,
	"hi-blue":    text.FgHiBlue,
	"hi-magenta": text.FgHiMagenta,
	"hi-cyan":    text.FgHiCyan,
	"hi-white":   text.FgHiWhite,
}

func parseColor(name string) (text.Color, bool) {
	color, ok := namedColors[name]
	return color, ok
}

func truncateLine(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func terminalWidth(w io.Writer) func() int {
	file, ok := w.(*os.File)
	if !ok || !isTerminal(file) {
		return func() int { return 0 }
	}
	fd := int(file.Fd())
	return func() int {
		width, _, err := term.GetSize(fd)
		if err != nil {
			return 0
		}
		return width
	}
}
