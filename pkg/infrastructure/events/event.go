package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// Event is a recorded change to a single part.
// Version counts the changes recorded for that part, starting at 1.
type Event interface {
	ID() uuid.UUID
	Type() string
	PartNumber() entities.PartNumber
	Data() interface{}
	OccurredAt() time.Time
	Version() int
}

type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// EventStore keeps inventory events grouped by part number
type EventStore interface {
	AppendEvent(event Event) error
	ReadPartEvents(number entities.PartNumber, fromVersion int) ([]Event, error)
	ReadAllEvents(fromPosition int) ([]Event, error)
	Subscribe(eventTypes []string, handler EventHandler) error
}

// Record is the concrete Event kept by the store
type Record struct {
	EventID   uuid.UUID
	EventType string
	Part      entities.PartNumber
	Payload   interface{}
	At        time.Time
	Seq       int
}

func (r Record) ID() uuid.UUID                   { return r.EventID }
func (r Record) Type() string                    { return r.EventType }
func (r Record) PartNumber() entities.PartNumber { return r.Part }
func (r Record) Data() interface{}               { return r.Payload }
func (r Record) OccurredAt() time.Time           { return r.At }
func (r Record) Version() int                    { return r.Seq }

// NewEvent creates an unversioned event; the store assigns the version on append
func NewEvent(eventType string, number entities.PartNumber, data interface{}) Event {
	return Record{
		EventID:   uuid.New(),
		EventType: eventType,
		Part:      number,
		Payload:   data,
		At:        time.Now(),
	}
}

// withVersion copies an event into a Record carrying the given version
func withVersion(event Event, version int) Record {
	return Record{
		EventID:   event.ID(),
		EventType: event.Type(),
		Part:      event.PartNumber(),
		Payload:   event.Data(),
		At:        event.OccurredAt(),
		Seq:       version,
	}
}
