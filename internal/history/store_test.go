package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"scrawl/internal/logger"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testEvent(seq uint64, session, raw string) logger.Event {
	return logger.Event{
		Sequence:  seq,
		Timestamp: time.Date(2026, 8, 25, 14, 0, int(seq), 0, time.UTC),
		SessionID: session,
		Level:     "info",
		Raw:       raw,
		Formatted: "[INF] " + raw,
	}
}

func TestStoreAppendAndTail(t *testing.T) {
	store := testStore(t)
	for i := 1; i <= 5; i++ {
		store.Append(testEvent(uint64(i), "sess-a", string(rune('a'+i-1))))
	}

	events, err := store.Tail(context.Background(), 3)
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("tail returned %d events, want 3", len(events))
	}
	if events[0].Raw != "c" || events[2].Raw != "e" {
		t.Fatalf("tail window wrong: %+v", events)
	}
	if events[0].Sequence != 3 {
		t.Fatalf("sequence = %d, want 3", events[0].Sequence)
	}
	if !events[0].Timestamp.Equal(time.Date(2026, 8, 25, 14, 0, 3, 0, time.UTC)) {
		t.Fatalf("timestamp lost in round trip: %v", events[0].Timestamp)
	}
}

func TestStoreTailDefaultLimit(t *testing.T) {
	store := testStore(t)
	store.Append(testEvent(1, "sess-a", "only"))

	events, err := store.Tail(context.Background(), 0)
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events", len(events))
	}
}

func TestStoreBySession(t *testing.T) {
	store := testStore(t)
	store.Append(testEvent(1, "sess-a", "first"))
	store.Append(testEvent(2, "sess-b", "other"))
	store.Append(testEvent(3, "sess-a", "second"))

	events, err := store.BySession(context.Background(), "sess-a", 10)
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Raw != "first" || events[1].Raw != "second" {
		t.Fatalf("session events out of order: %+v", events)
	}
}

func TestStoreReopenKeepsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	store.Append(testEvent(1, "sess-a", "persisted"))
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	events, err := reopened.Tail(context.Background(), 10)
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(events) != 1 || events[0].Raw != "persisted" {
		t.Fatalf("events lost across reopen: %+v", events)
	}
}

func TestStoreSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := store.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	store.Close()

	if _, err := Open(path); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestStoreNilSafety(t *testing.T) {
	var store *Store
	store.Append(testEvent(1, "sess-a", "ignored"))
	if err := store.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
	if store.Path() != "" {
		t.Fatal("nil path should be empty")
	}
}
