package events

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

const (
	PartAddedEvent       = "part.added"
	QuantityUpdatedEvent = "part.quantity_updated"
)

type PartAdded struct {
	Part entities.Part `json:"part"`
}

type QuantityUpdated struct {
	PartNumber  entities.PartNumber `json:"part_number"`
	OldQuantity entities.Quantity   `json:"old_quantity"`
	NewQuantity entities.Quantity   `json:"new_quantity"`
}

func NewPartAddedEvent(part entities.Part) Event {
	return NewEvent(PartAddedEvent, part.Number, PartAdded{Part: part})
}

func NewQuantityUpdatedEvent(number entities.PartNumber, oldQuantity, newQuantity entities.Quantity) Event {
	return NewEvent(QuantityUpdatedEvent, number, QuantityUpdated{
		PartNumber:  number,
		OldQuantity: oldQuantity,
		NewQuantity: newQuantity,
	})
}

// Describe renders an event as a single human-readable line
func Describe(event Event) string {
	switch data := event.Data().(type) {
	case PartAdded:
		return fmt.Sprintf("added part %d %q with quantity %d",
			data.Part.Number, data.Part.Name, data.Part.Quantity)
	case QuantityUpdated:
		return fmt.Sprintf("part %d quantity %d -> %d",
			data.PartNumber, data.OldQuantity, data.NewQuantity)
	default:
		return fmt.Sprintf("%s for part %d", event.Type(), event.PartNumber())
	}
}

// LoggingHandler writes every inventory event to a logrus logger
type LoggingHandler struct {
	logger logrus.FieldLogger
}

func NewLoggingHandler(logger logrus.FieldLogger) *LoggingHandler {
	return &LoggingHandler{logger: logger}
}

func (h *LoggingHandler) CanHandle(eventType string) bool {
	return eventType == PartAddedEvent || eventType == QuantityUpdatedEvent
}

func (h *LoggingHandler) Handle(event Event) error {
	h.logger.WithFields(logrus.Fields{
		"event_id":    event.ID().String(),
		"event":       event.Type(),
		"part_number": event.PartNumber(),
		"version":     event.Version(),
	}).Debug(Describe(event))
	return nil
}
