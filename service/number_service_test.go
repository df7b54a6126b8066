package service

import (
	"errors"
	"testing"

	"numberd/domain/numberset"
)

type captureSink struct {
	events []Event
}

func (c *captureSink) Publish(ev Event) {
	c.events = append(c.events, ev)
}

func TestNumberService_InsertPublishesEvent(t *testing.T) {
	sink := &captureSink{}
	svc := New(numberset.New(), sink, nil)

	entry, err := svc.Insert(5)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("published %d events, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Type != EventInsert || ev.Number != 5 || ev.V != 1 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.At != entry.InsertedAt.Unix() {
		t.Fatalf("event time %d != entry time %d", ev.At, entry.InsertedAt.Unix())
	}
}

func TestNumberService_RejectionsPublishNothing(t *testing.T) {
	sink := &captureSink{}
	svc := New(numberset.New(), sink, nil)

	if _, err := svc.Insert(1); !errors.Is(err, numberset.ErrBelowMinimum) {
		t.Fatalf("insert 1 err = %v", err)
	}
	svc.Insert(5)
	if _, err := svc.Insert(5); !errors.Is(err, numberset.ErrDuplicate) {
		t.Fatalf("duplicate err = %v", err)
	}
	if err := svc.Delete(99); !errors.Is(err, numberset.ErrNotFound) {
		t.Fatalf("delete miss err = %v", err)
	}

	// Only the one successful insert made it out.
	if len(sink.events) != 1 {
		t.Fatalf("published %d events, want 1: %+v", len(sink.events), sink.events)
	}
}

func TestNumberService_DeleteAndClearEvents(t *testing.T) {
	sink := &captureSink{}
	svc := New(numberset.New(), sink, nil)

	svc.Insert(5)
	svc.Insert(6)
	if err := svc.Delete(5); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed := svc.Clear(); removed != 1 {
		t.Fatalf("clear removed %d, want 1", removed)
	}

	types := []EventType{}
	for _, ev := range sink.events {
		types = append(types, ev.Type)
	}
	want := []EventType{EventInsert, EventInsert, EventDelete, EventClear}
	if len(types) != len(want) {
		t.Fatalf("event types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("event[%d] = %s, want %s", i, types[i], want[i])
		}
	}
	if last := sink.events[len(sink.events)-1]; last.Count != 1 {
		t.Fatalf("clear event count = %d, want 1", last.Count)
	}
}

func TestNumberService_NilCollaborators(t *testing.T) {
	svc := New(numberset.New(), nil, nil)

	if _, err := svc.Insert(5); err != nil {
		t.Fatalf("insert without publisher/metrics: %v", err)
	}
	if got := svc.List(); len(got) != 1 {
		t.Fatalf("list = %v", got)
	}
	if removed := svc.Clear(); removed != 1 {
		t.Fatalf("clear removed %d", removed)
	}
}

func TestIsRejection(t *testing.T) {
	for _, err := range []error{
		numberset.ErrDuplicate,
		numberset.ErrNotFound,
		numberset.ErrBelowMinimum,
	} {
		if !IsRejection(err) {
			t.Fatalf("IsRejection(%v) = false", err)
		}
	}
	if IsRejection(errors.New("boom")) {
		t.Fatal("IsRejection(arbitrary) = true")
	}
}
