package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/interfaces/cli/output"
)

// Menu choices
const (
	choiceAdd     = "1"
	choiceSearch  = "2"
	choiceUpdate  = "3"
	choiceDisplay = "4"
	choiceHistory = "5"
	choiceQuit    = "6"
)

// Config holds configuration for the menu command
type Config struct {
	Format  string
	NoColor bool
}

// MenuCommand runs the interactive inventory menu over a line-oriented stream
type MenuCommand struct {
	config   Config
	service  *services.InventoryService
	scanner  *bufio.Scanner
	out      io.Writer
	notifier *Notifier
}

// NewMenuCommand creates a menu command reading from in and writing to out
func NewMenuCommand(config Config, service *services.InventoryService, in io.Reader, out io.Writer) *MenuCommand {
	if config.Format == "" {
		config.Format = output.FormatTable
	}
	return &MenuCommand{
		config:   config,
		service:  service,
		scanner:  bufio.NewScanner(in),
		out:      out,
		notifier: NewNotifier(out, config.NoColor),
	}
}

// Execute runs the menu loop until the user quits, input ends or ctx is cancelled
func (c *MenuCommand) Execute(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()
		choice, ok := c.readLine("Enter your choice: ")
		if !ok {
			fmt.Fprintln(c.out)
			return c.scanner.Err()
		}

		switch choice {
		case choiceAdd:
			c.addPart()
		case choiceSearch:
			c.searchPart()
		case choiceUpdate:
			c.updateQuantity()
		case choiceDisplay:
			c.displayInventory()
		case choiceHistory:
			c.displayHistory()
		case choiceQuit:
			fmt.Fprintln(c.out, "Exiting program...")
			return nil
		default:
			c.notifier.Errorf("Invalid choice. Please try again.")
		}
	}
}

func (c *MenuCommand) printMenu() {
	fmt.Fprint(c.out, "\nMenu:\n"+
		"1. Add a new part\n"+
		"2. Search for a part\n"+
		"3. Update quantity\n"+
		"4. Display inventory\n"+
		"5. Show change history\n"+
		"6. Quit\n")
}

func (c *MenuCommand) addPart() {
	number, ok := c.readPartNumber("Enter part number: ")
	if !ok {
		return
	}

	if c.service.HasPart(number) {
		c.notifier.Errorf("Part number already exists. Try again.")
		return
	}

	name, ok := c.readLine("Enter part name: ")
	if !ok {
		return
	}

	quantity, ok := c.readQuantity("Enter initial quantity: ")
	if !ok {
		return
	}

	part, err := c.service.AddPart(number, name, quantity)
	if err != nil {
		c.reportError(err)
		return
	}

	if part.Name != strings.TrimSpace(name) {
		c.notifier.Warningf("Part name truncated to %q.", part.Name)
	}
	if part.Quantity < 0 {
		c.notifier.Warningf("Quantity is negative.")
	}
	c.notifier.Successf("Part added successfully.")
}

func (c *MenuCommand) searchPart() {
	number, ok := c.readPartNumber("Enter part number to search: ")
	if !ok {
		return
	}

	part, err := c.service.FindPart(number)
	if err != nil {
		c.reportError(err)
		return
	}

	fmt.Fprintf(c.out, "Part Name: %s\n", part.Name)
	fmt.Fprintf(c.out, "Quantity: %d\n", part.Quantity)

	changes, err := c.service.PartHistory(number)
	if err != nil {
		c.notifier.Errorf("Failed to read part history: %v", err)
		return
	}
	if len(changes) == 0 {
		return
	}
	fmt.Fprintln(c.out, "Changes:")
	for _, change := range changes {
		fmt.Fprintf(c.out, "  %d. %s\n", change.Sequence, change.Description)
	}
}

func (c *MenuCommand) updateQuantity() {
	number, ok := c.readPartNumber("Enter part number to update quantity: ")
	if !ok {
		return
	}

	if _, err := c.service.FindPart(number); err != nil {
		c.reportError(err)
		return
	}

	quantity, ok := c.readQuantity("Enter new quantity: ")
	if !ok {
		return
	}

	if err := c.service.UpdateQuantity(number, quantity); err != nil {
		c.reportError(err)
		return
	}

	if quantity < 0 {
		c.notifier.Warningf("Quantity is negative.")
	}
	c.notifier.Successf("Quantity updated successfully.")
}

func (c *MenuCommand) displayInventory() {
	fmt.Fprintln(c.out, "\nInventory:")
	if err := output.Render(c.out, c.service.ListParts(), c.config.Format); err != nil {
		c.notifier.Errorf("Failed to display inventory: %v", err)
		return
	}

	if c.config.Format == output.FormatTable {
		if err := output.RenderSummary(c.out, c.service.Summary()); err != nil {
			c.notifier.Errorf("Failed to display summary: %v", err)
		}
	}
}

func (c *MenuCommand) displayHistory() {
	history, err := c.service.History()
	if err != nil {
		c.notifier.Errorf("Failed to read history: %v", err)
		return
	}

	if len(history) == 0 {
		c.notifier.Infof("No changes recorded yet.")
		return
	}

	fmt.Fprintln(c.out, "\nChange history:")
	if err := output.RenderHistory(c.out, history); err != nil {
		c.notifier.Errorf("Failed to display history: %v", err)
	}
}

func (c *MenuCommand) reportError(err error) {
	switch {
	case errors.Is(err, entities.ErrAlreadyExists):
		c.notifier.Errorf("Part number already exists. Try again.")
	case errors.Is(err, entities.ErrNotFound):
		c.notifier.Errorf("Part not found.")
	case errors.Is(err, entities.ErrNameTooLong):
		c.notifier.Errorf("Part name is longer than %d characters. Please try again.", c.service.NameRules().MaxLength)
	case errors.Is(err, entities.ErrInvalidName):
		c.notifier.Errorf("Invalid input for part name. Please try again.")
	default:
		c.notifier.Errorf("%v", err)
	}
}

// readLine prompts and returns the next trimmed input line; false means input ended
func (c *MenuCommand) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

func (c *MenuCommand) readPartNumber(prompt string) (entities.PartNumber, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return 0, false
	}

	number, err := strconv.Atoi(line)
	if err != nil {
		c.notifier.Errorf("Invalid input for part number. Please try again.")
		return 0, false
	}
	return entities.PartNumber(number), true
}

func (c *MenuCommand) readQuantity(prompt string) (entities.Quantity, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return 0, false
	}

	quantity, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		c.notifier.Errorf("Invalid input for quantity. Please try again.")
		return 0, false
	}
	return entities.Quantity(quantity), true
}
