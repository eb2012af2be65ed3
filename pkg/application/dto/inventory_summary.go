package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// InventorySummary aggregates the registry contents for display.
// TotalUnits is exact: the sum of quantities may exceed int64.
type InventorySummary struct {
	PartCount  int             `json:"part_count"`
	TotalUnits decimal.Decimal `json:"total_units"`
	MeanUnits  decimal.Decimal `json:"mean_units"`
}

// HistoryEntry is one recorded registry change
type HistoryEntry struct {
	Sequence    int                 `json:"sequence"`
	Event       string              `json:"event"`
	PartNumber  entities.PartNumber `json:"part_number"`
	Description string              `json:"description"`
}
