package memory

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/domain/repositories"
)

// PartRepository provides in-memory part storage ordered by part number
type PartRepository struct {
	parts []entities.Part
}

// NewPartRepository creates an empty in-memory part repository
func NewPartRepository(expectedParts int) *PartRepository {
	return &PartRepository{
		parts: make([]entities.Part, 0, expectedParts),
	}
}

// Verify interface compliance
var _ repositories.PartRepository = (*PartRepository)(nil)

// LoadParts inserts parts one by one, stopping at the first duplicate
func (r *PartRepository) LoadParts(parts []*entities.Part) error {
	for _, part := range parts {
		if err := r.Insert(*part); err != nil {
			return err
		}
	}
	return nil
}

// Insert places the part before the first part whose number is not less than its own
func (r *PartRepository) Insert(part entities.Part) error {
	index := r.search(part.Number)
	if index < len(r.parts) && r.parts[index].Number == part.Number {
		return errors.Wrapf(entities.ErrAlreadyExists, "part %d", part.Number)
	}

	r.parts = append(r.parts, entities.Part{})
	copy(r.parts[index+1:], r.parts[index:])
	r.parts[index] = part
	return nil
}

// Find returns a copy of the part with the given number
func (r *PartRepository) Find(number entities.PartNumber) (*entities.Part, error) {
	index, ok := r.indexOf(number)
	if !ok {
		return nil, errors.Wrapf(entities.ErrNotFound, "part %d", number)
	}
	part := r.parts[index]
	return &part, nil
}

// UpdateQuantity replaces the quantity of an existing part
func (r *PartRepository) UpdateQuantity(number entities.PartNumber, quantity entities.Quantity) error {
	index, ok := r.indexOf(number)
	if !ok {
		return errors.Wrapf(entities.ErrNotFound, "part %d", number)
	}
	r.parts[index].Quantity = quantity
	return nil
}

// Enumerate returns all parts in ascending part number order
func (r *PartRepository) Enumerate() []entities.Part {
	parts := make([]entities.Part, len(r.parts))
	copy(parts, r.parts)
	return parts
}

// Len returns the number of stored parts
func (r *PartRepository) Len() int {
	return len(r.parts)
}

func (r *PartRepository) search(number entities.PartNumber) int {
	return sort.Search(len(r.parts), func(i int) bool {
		return r.parts[i].Number >= number
	})
}

func (r *PartRepository) indexOf(number entities.PartNumber) (int, bool) {
	index := r.search(number)
	if index < len(r.parts) && r.parts[index].Number == number {
		return index, true
	}
	return 0, false
}
