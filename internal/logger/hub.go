package logger

import (
	"sync"
	"time"
)

// Event is one console write as seen by observers: the raw message the caller
// logged plus the fully formatted text the sink emitted.
type Event struct {
	Sequence  uint64    `json:"seq"`
	Timestamp time.Time `json:"ts"`
	SessionID string    `json:"session_id,omitempty"`
	Level     string    `json:"level"`
	Raw       string    `json:"raw"`
	Formatted string    `json:"formatted"`
}

// EventSink receives every published event (for persistence, UI mirrors).
type EventSink interface {
	Append(Event)
}

// Hub stores recent console events and fans them out to registered observers
// and sinks. The consumer goroutine publishes; any goroutine may subscribe
// or read the buffer.
type Hub struct {
	mu        sync.Mutex
	capacity  int
	buffer    []Event
	nextSeq   uint64
	sinks     []EventSink
	observers []func(Event)
}

// NewHub constructs a bounded in-memory event buffer.
func NewHub(capacity int) *Hub {
	if capacity <= 0 {
		capacity = 512
	}
	return &Hub{capacity: capacity}
}

// AddSink wires an additional sink that receives every published event.
func (h *Hub) AddSink(sink EventSink) {
	if h == nil || sink == nil {
		return
	}
	h.mu.Lock()
	h.sinks = append(h.sinks, sink)
	h.mu.Unlock()
}

// AddObserver registers a fire-and-forget callback invoked once per console
// write. A misbehaving observer never disturbs the pipeline.
func (h *Hub) AddObserver(fn func(Event)) {
	if h == nil || fn == nil {
		return
	}
	h.mu.Lock()
	h.observers = append(h.observers, fn)
	h.mu.Unlock()
}

// Publish appends an event to the buffer and notifies sinks and observers.
func (h *Hub) Publish(evt Event) {
	if h == nil {
		return
	}
	h.mu.Lock()
	h.nextSeq++
	evt.Sequence = h.nextSeq
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	if len(h.buffer) == h.capacity {
		copy(h.buffer, h.buffer[1:])
		h.buffer = h.buffer[:h.capacity-1]
	}
	h.buffer = append(h.buffer, evt)
	sinks := append([]EventSink(nil), h.sinks...)
	observers := append(([]func(Event))(nil), h.observers...)
	h.mu.Unlock()

	for _, sink := range sinks {
		notifySink(sink, evt)
	}
	for _, fn := range observers {
		notifyObserver(fn, evt)
	}
}

// Tail returns the most recent limit events without blocking.
func (h *Hub) Tail(limit int) ([]Event, uint64) {
	if h == nil {
		return nil, 0
	}
	if limit <= 0 || limit > h.capacity {
		limit = h.capacity
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.buffer) == 0 {
		return nil, h.nextSeq
	}
	start := len(h.buffer) - limit
	if start < 0 {
		start = 0
	}
	out := make([]Event, len(h.buffer)-start)
	copy(out, h.buffer[start:])
	return out, h.nextSeq
}

func notifySink(sink EventSink, evt Event) {
	defer func() { _ = recover() }()
	sink.Append(evt)
}

func notifyObserver(fn func(Event), evt Event) {
	defer func() { _ = recover() }()
	fn(evt)
}
