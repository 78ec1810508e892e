// Package activity collects editor lifecycle events (reconcile decisions,
// debounce windows, edit session boundaries) into a bounded in-memory log,
// optionally mirrored to an OTLP endpoint.
package activity

import (
	"sync"
	"time"
)

// Event is one recorded editor lifecycle event
type Event struct {
	Time       time.Time         `json:"time"`
	Name       string            `json:"name"`       // e.g. "reconcile.write", "debounce.commit"
	Attributes map[string]string `json:"attributes"` // Additional metadata (handle, lengths, seqs)
}

// Log stores recent events in a ring buffer
type Log struct {
	mu        sync.RWMutex
	events    []Event
	maxEvents int
	onChange  func() // Callback when an event is appended
	exporter  *OTLPExporter
}

// NewLog creates a log keeping at most maxEvents entries (default 200)
func NewLog(maxEvents int) *Log {
	if maxEvents <= 0 {
		maxEvents = 200
	}
	exporter, _ := NewOTLPExporter()
	return &Log{
		events:    make([]Event, 0, maxEvents),
		maxEvents: maxEvents,
		exporter:  exporter,
	}
}

// SetOnChange registers a callback invoked after each append. Used by the
// UI to trigger a redraw of the activity panel.
func (l *Log) SetOnChange(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = fn
}

// Record appends an event. Attributes are copied so callers may reuse the
// map. Implements the editor's Recorder interface.
func (l *Log) Record(event string, attrs map[string]string) {
	e := Event{Time: time.Now(), Name: event}
	if len(attrs) > 0 {
		e.Attributes = make(map[string]string, len(attrs))
		for k, v := range attrs {
			e.Attributes[k] = v
		}
	}

	l.mu.Lock()
	l.events = append(l.events, e)
	if len(l.events) > l.maxEvents {
		l.events = l.events[len(l.events)-l.maxEvents:]
	}
	onChange := l.onChange
	exporter := l.exporter
	l.mu.Unlock()

	exporter.Export(e)
	if onChange != nil {
		onChange()
	}
}

// Events returns a copy of the log, oldest first
func (l *Log) Events() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of stored events
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// Clear drops all stored events
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = l.events[:0]
}
