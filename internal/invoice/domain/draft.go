package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BatchKey identifies a stock-keeping unit at a specific batch.
type BatchKey struct {
	ItemCode string
	Batch    string
}

// DraftLine is a mutable bill row under edit. Derived amounts are filled
// by the quote step and are never authoritative.
type DraftLine struct {
	ItemCode    string          `json:"item_code"`
	ItemName    string          `json:"item_name"`
	Batch       string          `json:"batch"`
	Expiry      string          `json:"expiry"`
	Pack        string          `json:"pack"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	MRP         decimal.Decimal `json:"mrp"`
	CGSTPercent float64         `json:"cgst_percent"`
	SGSTPercent float64         `json:"sgst_percent"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	CGSTAmount  decimal.Decimal `json:"cgst_amount"`
	SGSTAmount  decimal.Decimal `json:"sgst_amount"`
	Total       decimal.Decimal `json:"total"`
}

// Key returns the line's batch identity.
func (l DraftLine) Key() BatchKey {
	return BatchKey{
		ItemCode: strings.TrimSpace(l.ItemCode),
		Batch:    strings.TrimSpace(l.Batch),
	}
}

// Blank reports whether the line is an empty placeholder row.
func (l DraftLine) Blank() bool {
	return strings.TrimSpace(l.ItemCode) == ""
}

// PendingQuantities sums draft quantities per batch key. Rows missing an
// item code or a batch and rows without a positive quantity are not
// reservation-tracked. It is a pure derivation of the draft, recomputed
// on every mutation.
func PendingQuantities(draftLines []DraftLine) map[BatchKey]int {
	pending := make(map[BatchKey]int)
	for _, line := range draftLines {
		key := line.Key()
		if key.ItemCode == "" || key.Batch == "" || line.Quantity <= 0 {
			continue
		}
		pending[key] += line.Quantity
	}
	return pending
}

// AvailableStock returns the units of a batch still open for picking
// once quantities already committed to the draft are subtracted. Never
// negative.
func AvailableStock(stockQuantity int, pending map[BatchKey]int, key BatchKey) int {
	available := stockQuantity - pending[key]
	if available < 0 {
		return 0
	}
	return available
}

// MergeOrAppendLine folds a picked batch into the draft. A pick matching
// an existing row on item, batch AND rate adds to that row's quantity;
// two rows for the same batch at different rates stay distinct so
// discount-varied lines are not collapsed. Otherwise the pick replaces
// the first blank placeholder row, or is appended.
func MergeOrAppendLine(draftLines []DraftLine, picked DraftLine) []DraftLine {
	key := picked.Key()
	for i := range draftLines {
		line := &draftLines[i]
		if line.Blank() {
			continue
		}
		if line.Key() == key && line.Rate.Equal(picked.Rate) {
			line.Quantity += picked.Quantity
			return draftLines
		}
	}
	for i := range draftLines {
		if draftLines[i].Blank() {
			draftLines[i] = picked
			return draftLines
		}
	}
	return append(draftLines, picked)
}
