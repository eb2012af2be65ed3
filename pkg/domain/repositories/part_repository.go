package repositories

import "github.com/vsinha/inventory/pkg/domain/entities"

// PartRepository is the ordered, uniquely keyed collection of parts.
// Insert returns entities.ErrAlreadyExists for a present key; Find and
// UpdateQuantity return entities.ErrNotFound for an absent one.
type PartRepository interface {
	Insert(part entities.Part) error
	Find(number entities.PartNumber) (*entities.Part, error)
	UpdateQuantity(number entities.PartNumber, quantity entities.Quantity) error
	Enumerate() []entities.Part
	Len() int
}
