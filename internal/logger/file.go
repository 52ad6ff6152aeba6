package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

const (
	defaultRetryAttempts = 10
	defaultRetryDelay    = 50 * time.Millisecond
	// flatRetries is how many attempts keep the base delay before it doubles.
	flatRetries = 5
)

// fileSink appends formatted lines to dated log files. Multiple processes may
// share a file, so each append takes a sidecar flock and contention is
// retried with backoff instead of failing the entry outright.
type fileSink struct {
	dir         string
	sessionDate string
	debugMarker bool
	attempts    int
	retryDelay  time.Duration
	sleep       func(time.Duration)
}

func newFileSink(dir string, sessionDate string, debugMarker bool, attempts int, retryDelay time.Duration) *fileSink {
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	return &fileSink{
		dir:         dir,
		sessionDate: sessionDate,
		debugMarker: debugMarker,
		attempts:    attempts,
		retryDelay:  retryDelay,
		sleep:       time.Sleep,
	}
}

// path builds {dir}/{session-date}{suffix}{_debug?}.txt.
func (f *fileSink) path(suffix string) string {
	name := f.sessionDate + suffix
	if f.debugMarker {
		name += "_debug"
	}
	return filepath.Join(f.dir, name+".txt")
}

// write appends lines to the file(s) selected by suffix. A trailing "+"
// writes the same text to both the main and the suffixed file.
func (f *fileSink) write(lines []string, suffix string) error {
	suffix = strings.TrimSpace(suffix)
	dual := strings.HasSuffix(suffix, "+")
	suffix = strings.TrimSuffix(suffix, "+")

	var paths []string
	if suffix == "" || dual {
		paths = append(paths, f.path(""))
	}
	if suffix != "" {
		paths = append(paths, f.path(suffix))
	}

	payload := []byte(strings.Join(lines, "\n") + "\n")
	for _, path := range paths {
		if err := f.appendWithRetry(path, payload); err != nil {
			return err
		}
	}
	return nil
}

// appendWithRetry attempts the append up to f.attempts times, sleeping the
// base delay between the first flatRetries attempts and doubling it after
// that. The final error carries the path and exhausted attempt count.
func (f *fileSink) appendWithRetry(path string, payload []byte) error {
	delay := f.retryDelay
	var lastErr error
	for attempt := 1; attempt <= f.attempts; attempt++ {
		lastErr = f.appendOnce(path, payload)
		if lastErr == nil {
			return nil
		}
		if attempt == f.attempts {
			break
		}
		f.sleep(delay)
		if attempt >= flatRetries {
			delay *= 2
		}
	}
	return fmt.Errorf("append to %s failed after %d attempts: %w", path, f.attempts, lastErr)
}

func (f *fileSink) appendOnce(path string, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire log lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("log file %s is locked by another writer", path)
	}
	defer func() { _ = lock.Unlock() }()

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if _, err := file.Write(payload); err != nil {
		_ = file.Close()
		return fmt.Errorf("write log file: %w", err)
	}
	return file.Close()
}
