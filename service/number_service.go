package service

import (
	"errors"
	"time"

	"numberd/domain/numberset"
	"numberd/infra/metrics"
)

// EventType names a store mutation.
type EventType string

const (
	EventInsert EventType = "insert"
	EventDelete EventType = "delete"
	EventClear  EventType = "clear"
)

// Event is the versioned record published after a successful mutation.
type Event struct {
	V      int       `json:"v"`
	Type   EventType `json:"type"`
	Number uint64    `json:"number,omitempty"`
	Count  int       `json:"count,omitempty"`
	At     int64     `json:"at"`
}

// Publisher receives mutation events. Publish must not block; the store
// path never waits on downstream consumers.
type Publisher interface {
	Publish(Event)
}

// NumberService is the only write entry point into the system. All
// coordination between the domain set, the event feed, and metrics
// happens here. The transport layer calls nothing else.
type NumberService struct {
	set     *numberset.Set
	events  Publisher
	metrics *metrics.Metrics
}

// New wires all dependencies. events and m may be nil; both are
// optional collaborators.
func New(set *numberset.Set, events Publisher, m *metrics.Metrics) *NumberService {
	return &NumberService{
		set:     set,
		events:  events,
		metrics: m,
	}
}

// Insert adds number to the set. Business-rule rejections come back as
// the set's sentinel errors; callers map them to responses, never to
// transport failures.
func (s *NumberService) Insert(number uint64) (numberset.Entry, error) {
	entry, err := s.set.Insert(number)
	if err != nil {
		s.metrics.Observe("insert", metrics.ResultRejected)
		return numberset.Entry{}, err
	}

	s.metrics.Observe("insert", metrics.ResultOK)
	s.metrics.SetLive(s.set.Len())
	s.publish(Event{
		Type:   EventInsert,
		Number: number,
		At:     entry.InsertedAt.Unix(),
	})
	return entry, nil
}

// Delete removes number from the set.
func (s *NumberService) Delete(number uint64) error {
	if err := s.set.Delete(number); err != nil {
		s.metrics.Observe("delete", metrics.ResultRejected)
		return err
	}

	s.metrics.Observe("delete", metrics.ResultOK)
	s.metrics.SetLive(s.set.Len())
	s.publish(Event{
		Type:   EventDelete,
		Number: number,
		At:     time.Now().Unix(),
	})
	return nil
}

// List returns every entry in ascending number order. It never fails.
func (s *NumberService) List() []numberset.Entry {
	s.metrics.Observe("list", metrics.ResultOK)
	return s.set.List()
}

// Clear removes all entries and returns how many were removed. It never
// fails; clearing an empty set removes zero.
func (s *NumberService) Clear() int {
	removed := s.set.Clear()

	s.metrics.Observe("clear", metrics.ResultOK)
	s.metrics.SetLive(0)
	s.publish(Event{
		Type:  EventClear,
		Count: removed,
		At:    time.Now().Unix(),
	})
	return removed
}

func (s *NumberService) publish(ev Event) {
	if s.events == nil {
		return
	}
	ev.V = 1
	s.events.Publish(ev)
}

// IsRejection reports whether err is a business-rule rejection rather
// than a transport or programming error.
func IsRejection(err error) bool {
	return errors.Is(err, numberset.ErrDuplicate) ||
		errors.Is(err, numberset.ErrNotFound) ||
		errors.Is(err, numberset.ErrBelowMinimum)
}
