package testing

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/infrastructure/events"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/memory"
)

// WorkshopParts are the fixture parts used across package tests, deliberately unsorted
func WorkshopParts() []*entities.Part {
	return []*entities.Part{
		{Number: 10, Name: "Bolt", Quantity: 5},
		{Number: 5, Name: "Nut", Quantity: 20},
		{Number: 7, Name: "Washer", Quantity: 100},
	}
}

// BuildWorkshopTestData builds a registry preloaded with WorkshopParts
func BuildWorkshopTestData() (*memory.PartRepository, error) {
	parts := WorkshopParts()
	repo := memory.NewPartRepository(len(parts))
	if err := repo.LoadParts(parts); err != nil {
		return nil, err
	}
	return repo, nil
}

// BuildWorkshopService wires an InventoryService over the workshop registry with a silent logger
func BuildWorkshopService(rules entities.NameRules) (*services.InventoryService, error) {
	repo, err := BuildWorkshopTestData()
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return services.NewInventoryService(repo, events.NewInMemoryEventStore(logger), rules, logger), nil
}
