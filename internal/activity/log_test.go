package activity

import (
	"testing"
)

func TestLogRecordAndRead(t *testing.T) {
	l := NewLog(10)
	l.Record("reconcile.write", map[string]string{"len": "5"})
	l.Record("debounce.commit", nil)

	events := l.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Name != "reconcile.write" || events[0].Attributes["len"] != "5" {
		t.Errorf("first event = %+v", events[0])
	}
	if events[1].Name != "debounce.commit" {
		t.Errorf("second event = %+v", events[1])
	}
}

func TestLogRingEviction(t *testing.T) {
	l := NewLog(3)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		l.Record(name, nil)
	}

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events after eviction, got %d", len(events))
	}
	if events[0].Name != "c" || events[2].Name != "e" {
		t.Errorf("wrong survivors: %v", events)
	}
}

func TestLogCopiesAttributes(t *testing.T) {
	l := NewLog(10)
	attrs := map[string]string{"handle": "h1"}
	l.Record("edit.begin", attrs)
	attrs["handle"] = "mutated"

	if got := l.Events()[0].Attributes["handle"]; got != "h1" {
		t.Errorf("stored attributes aliased the caller's map: %q", got)
	}
}

func TestLogOnChange(t *testing.T) {
	l := NewLog(10)
	var calls int
	l.SetOnChange(func() { calls++ })

	l.Record("a", nil)
	l.Record("b", nil)
	if calls != 2 {
		t.Errorf("expected 2 onChange calls, got %d", calls)
	}
}

func TestLogClear(t *testing.T) {
	l := NewLog(10)
	l.Record("a", nil)
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("expected empty log after clear, got %d", l.Len())
	}
}
