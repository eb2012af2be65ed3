package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/infrastructure/events"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/memory"
	fixtures "github.com/vsinha/inventory/pkg/infrastructure/testing"
)

func newService(rules entities.NameRules) *services.InventoryService {
	logger, _ := test.NewNullLogger()
	return services.NewInventoryService(
		memory.NewPartRepository(4),
		events.NewInMemoryEventStore(logger),
		rules,
		logger,
	)
}

func runMenu(t *testing.T, service *services.InventoryService, format string, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	cmd := NewMenuCommand(Config{Format: format, NoColor: true}, service, in, &out)
	require.NoError(t, cmd.Execute(context.Background()))
	return out.String()
}

func TestMenuCommand_AddSearchUpdateDisplay(t *testing.T) {
	service := newService(entities.DefaultNameRules())

	out := runMenu(t, service, "csv",
		"1", "10", "Bolt", "5",
		"1", "5", "Nut", "20",
		"1", "7", "Washer", "100",
		"1", "7",
		"3", "7", "50",
		"2", "7",
		"4",
		"6",
	)

	assert.Equal(t, 3, strings.Count(out, "Part added successfully."))
	assert.Contains(t, out, "Part number already exists. Try again.")
	assert.Contains(t, out, "Quantity updated successfully.")
	assert.Contains(t, out, "Part Name: Washer\nQuantity: 50\n")
	assert.Contains(t, out, "number,name,quantity\n5,Nut,20\n7,Washer,50\n10,Bolt,5\n")
	assert.True(t, strings.HasSuffix(out, "Exiting program...\n"))

	part, err := service.FindPart(7)
	require.NoError(t, err)
	assert.Equal(t, entities.Quantity(50), part.Quantity)
}

func TestMenuCommand_SearchShowsPartChanges(t *testing.T) {
	service := newService(entities.DefaultNameRules())

	out := runMenu(t, service, "table",
		"1", "7", "Washer", "100",
		"1", "5", "Nut", "20",
		"3", "7", "50",
		"3", "5", "25",
		"2", "7",
		"6",
	)

	assert.Contains(t, out, "Part Name: Washer\nQuantity: 50\nChanges:\n"+
		"  1. added part 7 \"Washer\" with quantity 100\n"+
		"  2. part 7 quantity 100 -> 50\n")
	assert.NotContains(t, out, "part 5 quantity")
	assert.Equal(t, 1, strings.Count(out, "Changes:"))
}

func TestMenuCommand_SearchSeededPartHasNoChanges(t *testing.T) {
	service, err := fixtures.BuildWorkshopService(entities.DefaultNameRules())
	require.NoError(t, err)

	out := runMenu(t, service, "table", "2", "10", "6")

	assert.Contains(t, out, "Part Name: Bolt\nQuantity: 5\n")
	assert.NotContains(t, out, "Changes:")
}

func TestMenuCommand_AddDoesNotLogLookupMiss(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	service := services.NewInventoryService(
		memory.NewPartRepository(1),
		events.NewInMemoryEventStore(logger),
		entities.DefaultNameRules(),
		logger,
	)

	out := runMenu(t, service, "table", "1", "3", "Pin", "9", "6")
	require.Contains(t, out, "Part added successfully.")

	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, "part lookup missed", entry.Message)
	}
}

func TestMenuCommand_WorkshopFixture(t *testing.T) {
	service, err := fixtures.BuildWorkshopService(entities.DefaultNameRules())
	require.NoError(t, err)

	out := runMenu(t, service, "csv",
		"1", "7",
		"4",
		"6",
	)

	assert.Contains(t, out, "Part number already exists. Try again.")
	assert.NotContains(t, out, "Enter part name")
	assert.Contains(t, out, "number,name,quantity\n5,Nut,20\n7,Washer,100\n10,Bolt,5\n")
}

func TestMenuCommand_MissingParts(t *testing.T) {
	service := newService(entities.DefaultNameRules())

	out := runMenu(t, service, "table",
		"2", "99",
		"3", "99",
		"6",
	)

	assert.Equal(t, 2, strings.Count(out, "Part not found."))
	assert.NotContains(t, out, "Enter new quantity")
	assert.Empty(t, service.ListParts())
}

func TestMenuCommand_MalformedInput(t *testing.T) {
	service := newService(entities.DefaultNameRules())

	out := runMenu(t, service, "table",
		"abc",
		"1", "ten",
		"1", "1", "Pin", "lots",
		"3", "x",
		"6",
	)

	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Equal(t, 2, strings.Count(out, "Invalid input for part number."))
	assert.Contains(t, out, "Invalid input for quantity.")
	assert.Empty(t, service.ListParts())
}

func TestMenuCommand_NamePolicy(t *testing.T) {
	long := strings.Repeat("x", entities.DefaultMaxNameLength+1)

	t.Run("reject", func(t *testing.T) {
		service := newService(entities.DefaultNameRules())
		out := runMenu(t, service, "table", "1", "1", long, "1", "6")
		assert.Contains(t, out, "Part name is longer than 25 characters.")
		assert.Empty(t, service.ListParts())
	})

	t.Run("truncate", func(t *testing.T) {
		service := newService(entities.NameRules{MaxLength: entities.DefaultMaxNameLength, Policy: entities.TruncateLongNames})
		out := runMenu(t, service, "table", "1", "1", long, "1", "6")
		assert.Contains(t, out, "Part name truncated")
		part, err := service.FindPart(1)
		require.NoError(t, err)
		assert.Len(t, part.Name, entities.DefaultMaxNameLength)
	})

	t.Run("empty", func(t *testing.T) {
		service := newService(entities.DefaultNameRules())
		out := runMenu(t, service, "table", "1", "1", "  ", "1", "6")
		assert.Contains(t, out, "Invalid input for part name.")
	})
}

func TestMenuCommand_NegativeQuantityWarns(t *testing.T) {
	service := newService(entities.DefaultNameRules())
	out := runMenu(t, service, "table", "1", "4", "Shim", "-3", "6")

	assert.Contains(t, out, "⚠ Quantity is negative.")
	assert.Contains(t, out, "Part added successfully.")
}

func TestMenuCommand_DisplayTableAndHistory(t *testing.T) {
	service := newService(entities.DefaultNameRules())
	out := runMenu(t, service, "table",
		"5",
		"1", "2", "Spring", "8",
		"4",
		"5",
		"6",
	)

	assert.Contains(t, out, "No changes recorded yet.")
	assert.Contains(t, out, "Spring")
	assert.Contains(t, out, "Parts: 1  Total units: 8  Mean units per part: 8.00")
	assert.Contains(t, out, `added part 2 "Spring" with quantity 8`)
}

func TestMenuCommand_EOFExitsCleanly(t *testing.T) {
	service := newService(entities.DefaultNameRules())
	var out bytes.Buffer
	cmd := NewMenuCommand(Config{NoColor: true}, service, strings.NewReader("1\n3"), &out)

	require.NoError(t, cmd.Execute(context.Background()))
	assert.Empty(t, service.ListParts())
	assert.NotContains(t, out.String(), "Exiting program...")
}

func TestMenuCommand_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewMenuCommand(Config{NoColor: true}, newService(entities.DefaultNameRules()), strings.NewReader("6\n"), &bytes.Buffer{})
	assert.ErrorIs(t, cmd.Execute(ctx), context.Canceled)
}

func TestNotifier(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewNotifier(&buf, true)

	notifier.Errorf("bad %d", 1)
	notifier.Warningf("careful")
	notifier.Successf("done")
	notifier.Infof("note")

	assert.Equal(t, "✗ bad 1\n⚠ careful\n✔ done\nℹ note\n", buf.String())
}
