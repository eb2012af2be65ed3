package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

func TestLoader_ReadParts(t *testing.T) {
	loader := NewLoader(entities.DefaultNameRules())

	parts, err := loader.ReadParts(strings.NewReader("number,name,quantity\n10,Bolt,5\n5, Nut ,20\n7,Washer,-1\n"))
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.Equal(t, entities.Part{Number: 10, Name: "Bolt", Quantity: 5}, *parts[0])
	assert.Equal(t, entities.Part{Number: 5, Name: "Nut", Quantity: 20}, *parts[1])
	assert.Equal(t, entities.Quantity(-1), parts[2].Quantity)
}

func TestLoader_ReadParts_HeaderOnly(t *testing.T) {
	parts, err := NewLoader(entities.DefaultNameRules()).ReadParts(strings.NewReader("Number, Name, Quantity\n"))
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestLoader_ReadParts_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectError string
	}{
		{"empty file", "", "must have a header row"},
		{"wrong header", "id,name,qty\n", "header mismatch"},
		{"missing column", "number,name,quantity\n1,Bolt\n", "row 2: expected 3 columns, got 2"},
		{"bad number", "number,name,quantity\n1,Bolt,1\nx,Nut,2\n", `row 3: invalid number "x"`},
		{"bad quantity", "number,name,quantity\n1,Bolt,many\n", `row 2: invalid quantity "many"`},
		{"long name", "number,name,quantity\n1," + strings.Repeat("n", 26) + ",1\n", "part name too long"},
	}

	loader := NewLoader(entities.DefaultNameRules())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.ReadParts(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectError)
		})
	}
}

func TestLoader_LoadParts_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parts.csv")
	require.NoError(t, os.WriteFile(path, []byte("number,name,quantity\n3,Spring,8\n"), 0o644))

	parts, err := NewLoader(entities.DefaultNameRules()).LoadParts(path)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "Spring", parts[0].Name)

	_, err = NewLoader(entities.DefaultNameRules()).LoadParts(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open parts file")
}
