package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

var partsHeader = []string{"number", "name", "quantity"}

// Loader handles loading seed parts from CSV files
type Loader struct {
	rules entities.NameRules
}

// NewLoader creates a CSV loader that applies the given name rules to every row
func NewLoader(rules entities.NameRules) *Loader {
	return &Loader{rules: rules}
}

// LoadParts loads parts from a CSV file
func (l *Loader) LoadParts(filename string) ([]*entities.Part, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadParts(file)
}

// ReadParts reads parts CSV with a number,name,quantity header
func (l *Loader) ReadParts(r io.Reader) ([]*entities.Part, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read parts CSV: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("parts CSV must have a header row")
	}

	header := records[0]
	if !validateHeader(header, partsHeader) {
		return nil, fmt.Errorf("parts CSV header mismatch. Expected: %v, Got: %v", partsHeader, header)
	}

	parts := make([]*entities.Part, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(partsHeader) {
			return nil, fmt.Errorf("parts CSV row %d: expected %d columns, got %d", i+2, len(partsHeader), len(record))
		}

		part, err := l.parsePart(record)
		if err != nil {
			return nil, fmt.Errorf("parts CSV row %d: %w", i+2, err)
		}

		parts = append(parts, part)
	}

	return parts, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func (l *Loader) parsePart(record []string) (*entities.Part, error) {
	number, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", record[0], err)
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q: %w", record[2], err)
	}

	return entities.NewPart(entities.PartNumber(number), record[1], entities.Quantity(quantity), l.rules)
}
