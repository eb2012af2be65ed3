package services

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/domain/repositories"
	"github.com/vsinha/inventory/pkg/infrastructure/events"
)

// InventoryService applies name rules, logging and change events on top of a PartRepository
type InventoryService struct {
	repo       repositories.PartRepository
	eventStore events.EventStore
	rules      entities.NameRules
	logger     logrus.FieldLogger
}

// NewInventoryService creates an inventory service
func NewInventoryService(
	repo repositories.PartRepository,
	eventStore events.EventStore,
	rules entities.NameRules,
	logger logrus.FieldLogger,
) *InventoryService {
	return &InventoryService{
		repo:       repo,
		eventStore: eventStore,
		rules:      rules,
		logger:     logger,
	}
}

// NameRules returns the name rules applied by AddPart
func (s *InventoryService) NameRules() entities.NameRules {
	return s.rules
}

// AddPart creates a part and inserts it into the registry
func (s *InventoryService) AddPart(number entities.PartNumber, name string, quantity entities.Quantity) (*entities.Part, error) {
	log := s.logger.WithField("part_number", number)

	part, err := entities.NewPart(number, name, quantity, s.rules)
	if err != nil {
		log.WithError(err).Info("rejected part")
		return nil, err
	}

	if err := s.repo.Insert(*part); err != nil {
		log.WithError(err).Info("rejected part")
		return nil, err
	}

	if part.Quantity < 0 {
		log.WithField("quantity", part.Quantity).Warn("part added with negative quantity")
	}
	log.WithField("quantity", part.Quantity).Info("part added")
	s.publish(events.NewPartAddedEvent(*part))

	return part, nil
}

// FindPart returns the part with the given number
func (s *InventoryService) FindPart(number entities.PartNumber) (*entities.Part, error) {
	part, err := s.repo.Find(number)
	if err != nil {
		s.logger.WithField("part_number", number).Debug("part lookup missed")
		return nil, err
	}
	return part, nil
}

// HasPart reports whether a part with the given number is registered.
// Unlike FindPart it does not log a miss.
func (s *InventoryService) HasPart(number entities.PartNumber) bool {
	_, err := s.repo.Find(number)
	return err == nil
}

// UpdateQuantity replaces the quantity of an existing part
func (s *InventoryService) UpdateQuantity(number entities.PartNumber, quantity entities.Quantity) error {
	log := s.logger.WithFields(logrus.Fields{"part_number": number, "quantity": quantity})

	current, err := s.repo.Find(number)
	if err != nil {
		log.WithError(err).Info("quantity update rejected")
		return err
	}

	if err := s.repo.UpdateQuantity(number, quantity); err != nil {
		return err
	}

	if quantity < 0 {
		log.Warn("quantity set negative")
	}
	log.WithField("old_quantity", current.Quantity).Info("quantity updated")
	s.publish(events.NewQuantityUpdatedEvent(number, current.Quantity, quantity))

	return nil
}

// ListParts returns every part in ascending part number order
func (s *InventoryService) ListParts() []entities.Part {
	return s.repo.Enumerate()
}

// Summary totals the on-hand quantity across all parts
func (s *InventoryService) Summary() dto.InventorySummary {
	parts := s.repo.Enumerate()

	total := decimal.Zero
	for _, part := range parts {
		total = total.Add(decimal.NewFromInt(int64(part.Quantity)))
	}

	mean := decimal.Zero
	if len(parts) > 0 {
		mean = total.Div(decimal.NewFromInt(int64(len(parts)))).Round(2)
	}

	return dto.InventorySummary{
		PartCount:  len(parts),
		TotalUnits: total,
		MeanUnits:  mean,
	}
}

// History returns recorded changes in the order they happened
func (s *InventoryService) History() ([]dto.HistoryEntry, error) {
	recorded, err := s.eventStore.ReadAllEvents(0)
	if err != nil {
		return nil, err
	}

	history := make([]dto.HistoryEntry, 0, len(recorded))
	for i, event := range recorded {
		history = append(history, historyEntry(i+1, event))
	}
	return history, nil
}

// PartHistory returns the changes recorded for one part, numbered by the part's event version
func (s *InventoryService) PartHistory(number entities.PartNumber) ([]dto.HistoryEntry, error) {
	recorded, err := s.eventStore.ReadPartEvents(number, 1)
	if err != nil {
		return nil, err
	}

	history := make([]dto.HistoryEntry, 0, len(recorded))
	for _, event := range recorded {
		history = append(history, historyEntry(event.Version(), event))
	}
	return history, nil
}

func historyEntry(sequence int, event events.Event) dto.HistoryEntry {
	return dto.HistoryEntry{
		Sequence:    sequence,
		Event:       event.Type(),
		PartNumber:  event.PartNumber(),
		Description: events.Describe(event),
	}
}

func (s *InventoryService) publish(event events.Event) {
	if err := s.eventStore.AppendEvent(event); err != nil {
		s.logger.WithError(err).WithField("event", event.Type()).Warn("failed to record event")
	}
}
