package events

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// InMemoryEventStore keeps every appended event for the lifetime of the process.
// Subscribers are notified synchronously, in subscription order.
type InMemoryEventStore struct {
	byPart      map[entities.PartNumber][]Event
	subscribers map[string][]EventHandler
	mutex       sync.RWMutex
	allEvents   []Event
	logger      logrus.FieldLogger
}

func NewInMemoryEventStore(logger logrus.FieldLogger) *InMemoryEventStore {
	return &InMemoryEventStore{
		byPart:      make(map[entities.PartNumber][]Event),
		subscribers: make(map[string][]EventHandler),
		allEvents:   make([]Event, 0),
		logger:      logger,
	}
}

var _ EventStore = (*InMemoryEventStore)(nil)

func (s *InMemoryEventStore) AppendEvent(event Event) error {
	s.mutex.Lock()

	number := event.PartNumber()
	recorded := withVersion(event, len(s.byPart[number])+1)

	s.byPart[number] = append(s.byPart[number], recorded)
	s.allEvents = append(s.allEvents, recorded)
	handlers := append([]EventHandler(nil), s.subscribers[event.Type()]...)

	s.mutex.Unlock()

	s.notifySubscribers(handlers, recorded)
	return nil
}

// ReadPartEvents returns the events of one part starting at fromVersion (1-based)
func (s *InMemoryEventStore) ReadPartEvents(number entities.PartNumber, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	recorded := s.byPart[number]
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(recorded) {
		return []Event{}, nil
	}

	return append([]Event(nil), recorded[fromVersion-1:]...), nil
}

func (s *InMemoryEventStore) ReadAllEvents(fromPosition int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if fromPosition < 0 {
		fromPosition = 0
	}

	if fromPosition >= len(s.allEvents) {
		return []Event{}, nil
	}

	return append([]Event(nil), s.allEvents[fromPosition:]...), nil
}

func (s *InMemoryEventStore) Subscribe(eventTypes []string, handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}

	return nil
}

func (s *InMemoryEventStore) notifySubscribers(handlers []EventHandler, event Event) {
	for _, handler := range handlers {
		if !handler.CanHandle(event.Type()) {
			continue
		}
		if err := handler.Handle(event); err != nil {
			s.logger.WithError(err).WithField("event", event.Type()).Error("event handler failed")
		}
	}
}
