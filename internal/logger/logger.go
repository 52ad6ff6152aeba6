package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"scrawl/internal/config"
)

// ColorMode controls console coloring.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Options describes Logger construction parameters.
type Options struct {
	// LogDir receives the dated log files.
	LogDir string
	// ConsoleLevel and FileLevel are the per-sink thresholds.
	ConsoleLevel Level
	FileLevel    Level
	// DisabledLevels are dropped everywhere; Force cannot be listed.
	DisabledLevels []Level
	// VerboseNames prints padded full level names on the console.
	VerboseNames bool
	// Debug appends a "_debug" marker to log file names.
	Debug bool
	// ConsoleOut defaults to os.Stdout.
	ConsoleOut io.Writer
	// Color defaults to ColorAuto.
	Color ColorMode
	// HubCapacity bounds the in-memory observer event buffer.
	HubCapacity int
	// SessionID tags observer events; a fresh UUID is minted when empty.
	SessionID string
	// RetryAttempts and RetryDelay tune the file sink backoff (defaults 10
	// attempts starting at 50ms).
	RetryAttempts int
	RetryDelay    time.Duration
	// Now is a test seam for timestamps.
	Now func() time.Time
}

// Logger owns the ingestion queue, the single consumer goroutine, and both
// sinks. Any number of goroutines may log concurrently; enqueue never blocks
// on I/O and never surfaces an error to the caller.
type Logger struct {
	policy   *policy
	suppress suppressor
	console  *consoleSink
	file     *fileSink
	hub      *Hub

	verboseNames bool
	now          func() time.Time
	sessionID    string

	mu       sync.Mutex
	cond     *sync.Cond
	queue    []Entry
	stopping bool
	done     chan struct{}

	pending   atomic.Int64
	highWater atomic.Int64
}

// New constructs a Logger and starts its consumer goroutine immediately.
func New(opts Options) (*Logger, error) {
	if opts.LogDir == "" {
		return nil, fmt.Errorf("log directory is required")
	}
	if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	out := opts.ConsoleOut
	if out == nil {
		out = os.Stdout
	}
	colorize := false
	switch opts.Color {
	case ColorAlways:
		colorize = true
	case ColorNever:
		colorize = false
	default:
		colorize = isTerminal(out)
	}

	hub := NewHub(opts.HubCapacity)

	l := &Logger{
		policy:       newPolicy(opts.ConsoleLevel, opts.FileLevel, opts.DisabledLevels),
		console:      newConsoleSink(out, colorize, hub, sessionID),
		file:         newFileSink(opts.LogDir, now().Format("2006-01-02"), opts.Debug, opts.RetryAttempts, opts.RetryDelay),
		hub:          hub,
		verboseNames: opts.VerboseNames,
		now:          now,
		sessionID:    sessionID,
		done:         make(chan struct{}),
	}
	l.cond = sync.NewCond(&l.mu)

	go l.run()
	return l, nil
}

// NewFromConfig builds a Logger from application configuration.
func NewFromConfig(cfg *config.Config) (*Logger, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	consoleLevel, err := ParseLevel(cfg.ConsoleLevel)
	if err != nil {
		return nil, fmt.Errorf("console_level: %w", err)
	}
	fileLevel, err := ParseLevel(cfg.FileLevel)
	if err != nil {
		return nil, fmt.Errorf("file_level: %w", err)
	}
	disabled := make([]Level, 0, len(cfg.DisabledLevels))
	for _, name := range cfg.DisabledLevels {
		lvl, err := ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("disabled_levels: %w", err)
		}
		disabled = append(disabled, lvl)
	}
	return New(Options{
		LogDir:         cfg.LogDir,
		ConsoleLevel:   consoleLevel,
		FileLevel:      fileLevel,
		DisabledLevels: disabled,
		VerboseNames:   cfg.VerboseNames,
		Debug:          cfg.Debug,
		Color:          ColorMode(cfg.Color),
		HubCapacity:    cfg.History.Buffer,
	})
}

// Log builds an Entry and enqueues it. Safe to call from any goroutine,
// including during panics; it never blocks on sink I/O.
func (l *Logger) Log(message string, level Level, opts ...Option) {
	l.LogEntry(NewEntry(message, level, opts...))
}

// LogEntry enqueues a prebuilt Entry unchanged. Entries targeting no sink
// under the current policy are dropped before allocation into the queue, as
// are entries arriving after Stop began.
func (l *Logger) LogEntry(e Entry) {
	if l == nil || e.skip {
		return
	}
	if l.policy.targetsFor(e).empty() {
		return
	}

	l.mu.Lock()
	if l.stopping {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, e)
	pending := l.pending.Add(1)
	l.cond.Signal()
	l.mu.Unlock()

	for {
		hw := l.highWater.Load()
		if pending <= hw || l.highWater.CompareAndSwap(hw, pending) {
			break
		}
	}
}

// Warning logs at LevelWarning.
func (l *Logger) Warning(message string, opts ...Option) {
	l.Log(message, LevelWarning, opts...)
}

// Error logs at LevelError.
func (l *Logger) Error(message string, opts ...Option) {
	l.Log(message, LevelError, opts...)
}

// ErrorWithStack renders an error plus the calling goroutine's stack trace
// into a multi-line LevelError entry.
func (l *Logger) ErrorWithStack(err error, opts ...Option) {
	if err == nil {
		return
	}
	l.Log(err.Error()+"\n"+string(debug.Stack()), LevelError, opts...)
}

// SetConsoleLevel changes the console threshold at runtime.
func (l *Logger) SetConsoleLevel(lvl Level) { l.policy.setConsoleLevel(lvl) }

// SetFileLevel changes the file threshold at runtime.
func (l *Logger) SetFileLevel(lvl Level) { l.policy.setFileLevel(lvl) }

// ConsoleLevel returns the current console threshold.
func (l *Logger) ConsoleLevel() Level { return l.policy.consoleLevel() }

// FileLevel returns the current file threshold.
func (l *Logger) FileLevel() Level { return l.policy.fileLevel() }

// DisableLevel adds a level to the deny-list. Force cannot be disabled.
func (l *Logger) DisableLevel(lvl Level) { l.policy.disableLevel(lvl) }

// EnableLevel removes a level from the deny-list.
func (l *Logger) EnableLevel(lvl Level) { l.policy.enableLevel(lvl) }

// Hub exposes the observer hub for subscriptions and history sinks.
func (l *Logger) Hub() *Hub { return l.hub }

// SessionID returns the identifier tagged onto observer events.
func (l *Logger) SessionID() string { return l.sessionID }

// Pending reports how many accepted entries the consumer has not finished.
func (l *Logger) Pending() int64 { return l.pending.Load() }

// HighWater reports the largest queue depth observed since construction.
func (l *Logger) HighWater() int64 { return l.highWater.Load() }

// WaitForEmptyQueue blocks until every accepted entry has been processed.
// It does not stop the logger and may be called repeatedly; use it before
// interactive prompts so queued output cannot race with them.
func (l *Logger) WaitForEmptyQueue() {
	for spins := 0; l.pending.Load() > 0; spins++ {
		if spins < 100 {
			runtime.Gosched()
			continue
		}
		time.Sleep(time.Millisecond)
	}
}

// Stop closes the queue to new entries, drains everything already accepted,
// and joins the consumer. Safe to call more than once.
func (l *Logger) Stop() {
	l.mu.Lock()
	if !l.stopping {
		l.stopping = true
		l.cond.Broadcast()
	}
	l.mu.Unlock()
	<-l.done
}

// run is the single consumer loop: strict arrival order, one entry at a time.
func (l *Logger) run() {
	defer close(l.done)
	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.stopping {
			l.cond.Wait()
		}
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		e := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()

		l.process(e)
		l.pending.Add(-1)
	}
}

// process routes one dequeued entry. Target resolution runs again here
// because thresholds may have changed since enqueue; this evaluation is the
// authoritative one. Sink failures are contained: a bad entry never kills
// the consumer or touches the producer that logged it.
func (l *Logger) process(e Entry) {
	t := l.policy.targetsFor(e)
	if t.empty() {
		return
	}

	now := l.now()
	if l.suppress.shouldSuppress(e.Message, e.ShowTwiceTimeout, now) {
		return
	}

	if t.console {
		formatted := formatConsole(e, l.verboseNames)
		if err := l.console.write(e, formatted, now); err != nil {
			l.console.diagnostic(fmt.Sprintf("console write failed: %v", err))
		}
	}
	if t.file {
		lines := formatFile(e, now)
		if err := l.file.write(lines, e.FileSuffix); err != nil {
			// Reported directly, not through the queue, to avoid recursion.
			l.console.diagnostic(err.Error())
		}
	}
}
