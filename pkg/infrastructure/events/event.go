package events

import (
	"time"
)

// Event is one entry in a worksheet stream. Version counts from 1 within
// its stream; the store assigns it on append.
type Event interface {
	Type() string
	StreamID() string
	Data() any
	Timestamp() time.Time
	Version() int
}

// EventHandler receives the event types it subscribed to
type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// EventStore appends worksheet events and fans them out to subscribers
type EventStore interface {
	AppendEvent(streamID string, event Event) error
	ReadEvents(streamID string, fromVersion int) ([]Event, error)
	ReadAllEvents(fromPosition int) ([]Event, error)
	Position() int
	Subscribe(eventTypes []string, handler EventHandler) error
	Unsubscribe(handler EventHandler) error
}

// Record is the store's concrete Event
type Record struct {
	Kind      string
	Worksheet string
	Payload   any
	At        time.Time
	Seq       int
}

func (r Record) Type() string         { return r.Kind }
func (r Record) StreamID() string     { return r.Worksheet }
func (r Record) Data() any            { return r.Payload }
func (r Record) Timestamp() time.Time { return r.At }
func (r Record) Version() int         { return r.Seq }

// NewRecord stamps a worksheet change. The version is left for the store.
func NewRecord(eventType, worksheetID string, payload any) Record {
	return Record{
		Kind:      eventType,
		Worksheet: worksheetID,
		Payload:   payload,
		At:        time.Now(),
	}
}

// PayloadAs unwraps an event's payload as T
func PayloadAs[T any](event Event) (T, bool) {
	payload, ok := event.Data().(T)
	return payload, ok
}
