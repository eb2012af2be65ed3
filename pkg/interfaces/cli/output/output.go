package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/domain/entities"
)

// Supported listing formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

var partColumns = []string{"Part Number", "Part Name", "Quantity"}

// Render writes the parts listing in the requested format
func Render(w io.Writer, parts []entities.Part, format string) error {
	switch format {
	case FormatTable:
		return renderTable(w, parts)
	case FormatJSON:
		return renderJSON(w, parts)
	case FormatCSV:
		return renderCSV(w, parts)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// renderTable creates human-readable tabular output
func renderTable(w io.Writer, parts []entities.Part) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header(toAny(partColumns)...)

	for _, part := range parts {
		if err := table.Append(toAny(partRow(part))...); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// renderJSON writes the parts as an indented JSON array
func renderJSON(w io.Writer, parts []entities.Part) error {
	jsonData, err := json.MarshalIndent(parts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(jsonData)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// renderCSV writes the parts using the same columns the seed loader reads
func renderCSV(w io.Writer, parts []entities.Part) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"number", "name", "quantity"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, part := range parts {
		if err := writer.Write(partRow(part)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// RenderSummary writes a one-line stock summary
func RenderSummary(w io.Writer, summary dto.InventorySummary) error {
	_, err := fmt.Fprintf(w, "Parts: %d  Total units: %s  Mean units per part: %s\n",
		summary.PartCount, summary.TotalUnits.String(), summary.MeanUnits.StringFixed(2))
	return err
}

// RenderHistory writes the change history as a table
func RenderHistory(w io.Writer, history []dto.HistoryEntry) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header("#", "Part Number", "Change")

	for _, entry := range history {
		if err := table.Append(strconv.Itoa(entry.Sequence), strconv.Itoa(int(entry.PartNumber)), entry.Description); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func partRow(part entities.Part) []string {
	return []string{
		strconv.Itoa(int(part.Number)),
		part.Name,
		strconv.FormatInt(int64(part.Quantity), 10),
	}
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
