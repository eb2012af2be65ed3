package entities

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// DefaultMaxNameLength is the longest part name accepted by default
const DefaultMaxNameLength = 25

var (
	ErrAlreadyExists = errors.New("part number already exists")
	ErrNotFound      = errors.New("part not found")
	ErrNameTooLong   = errors.New("part name too long")
	ErrInvalidName   = errors.New("part name cannot be empty")
)

// PartNumber represents the unique integer key of a part
type PartNumber int

// Quantity represents an integer on-hand count
type Quantity int64

// NamePolicy decides what happens to names longer than the configured maximum
type NamePolicy int

const (
	RejectLongNames NamePolicy = iota
	TruncateLongNames
)

// String method for NamePolicy enum
func (p NamePolicy) String() string {
	switch p {
	case RejectLongNames:
		return "reject"
	case TruncateLongNames:
		return "truncate"
	default:
		return "unknown"
	}
}

// ParseNamePolicy converts a configuration value into a NamePolicy
func ParseNamePolicy(s string) (NamePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return RejectLongNames, nil
	case "truncate":
		return TruncateLongNames, nil
	default:
		return RejectLongNames, errors.Errorf("unknown name policy %q", s)
	}
}

// NameRules bounds the length of part names
type NameRules struct {
	MaxLength int
	Policy    NamePolicy
}

// DefaultNameRules rejects names longer than DefaultMaxNameLength runes
func DefaultNameRules() NameRules {
	return NameRules{MaxLength: DefaultMaxNameLength, Policy: RejectLongNames}
}

// Apply trims the name and enforces the length policy.
// Length is counted in runes.
func (r NameRules) Apply(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}

	maxLength := r.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxNameLength
	}

	n := utf8.RuneCountInString(name)
	if n <= maxLength {
		return name, nil
	}
	if r.Policy == TruncateLongNames {
		return string([]rune(name)[:maxLength]), nil
	}
	return "", errors.Wrapf(ErrNameTooLong, "%d characters, maximum is %d", n, maxLength)
}

// Part is one inventory record
type Part struct {
	Number   PartNumber `json:"number"`
	Name     string     `json:"name"`
	Quantity Quantity   `json:"quantity"`
}

// NewPart creates a Part whose name satisfies the given rules
func NewPart(number PartNumber, name string, quantity Quantity, rules NameRules) (*Part, error) {
	checked, err := rules.Apply(name)
	if err != nil {
		return nil, err
	}

	return &Part{
		Number:   number,
		Name:     checked,
		Quantity: quantity,
	}, nil
}
