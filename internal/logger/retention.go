package logger

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// datedLogPattern matches the files the file sink produces: a yyyy-MM-dd
// prefix, optional suffix and debug marker, .txt extension.
const datedLogPattern = "????-??-??*.txt"

// CleanupOldLogs removes dated log files in dir older than retentionDays.
// A retentionDays value of 0 disables pruning. Individual removal failures
// are collected rather than aborting the sweep.
func CleanupOldLogs(dir string, retentionDays int) (int, error) {
	if retentionDays <= 0 || dir == "" {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(datedLogPattern, entry.Name())
		if err != nil || !matched {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}
