package pricing

import "github.com/shopspring/decimal"

// Line is the slice of an invoice line the totals computation needs.
type Line struct {
	Quantity int
	Rate     decimal.Decimal
	MRP      decimal.Decimal
	Tax      LineTax
}

// Totals aggregates an invoice's derived amounts. FinalAmount is the
// collectable figure after discount, rounded to a whole currency unit.
type Totals struct {
	GrossAmt      decimal.Decimal
	CGSTAmt       decimal.Decimal
	SGSTAmt       decimal.Decimal
	Subtotal      decimal.Decimal
	DiscountAmt   decimal.Decimal
	AfterDiscount decimal.Decimal
	RoundOff      decimal.Decimal
	FinalAmount   int64
	SavedFromMRP  decimal.Decimal
}

// ComputeInvoiceTotals sums line amounts, applies a flat percentage
// discount, and rounds the payable figure to the nearest whole unit
// (half-up). RoundOff carries the residue so the printed bill still adds
// up. SavedFromMRP is informational only.
func ComputeInvoiceTotals(lines []Line, discountPercent float64) Totals {
	totals := Totals{
		GrossAmt:     decimal.Zero.Round(2),
		CGSTAmt:      decimal.Zero.Round(2),
		SGSTAmt:      decimal.Zero.Round(2),
		Subtotal:     decimal.Zero.Round(2),
		SavedFromMRP: decimal.Zero.Round(2),
	}

	for _, line := range lines {
		totals.GrossAmt = totals.GrossAmt.Add(line.Tax.GrossAmt)
		totals.CGSTAmt = totals.CGSTAmt.Add(line.Tax.CGSTAmt)
		totals.SGSTAmt = totals.SGSTAmt.Add(line.Tax.SGSTAmt)
		totals.Subtotal = totals.Subtotal.Add(line.Tax.Total)

		saved := line.MRP.Sub(line.Rate)
		if saved.Sign() > 0 {
			totals.SavedFromMRP = totals.SavedFromMRP.Add(
				round2(saved.Mul(decimal.NewFromInt(int64(line.Quantity)))),
			)
		}
	}

	discount := decimal.NewFromFloat(discountPercent)
	if discount.Sign() < 0 {
		discount = decimal.Zero
	}
	totals.DiscountAmt = round2(totals.Subtotal.Mul(discount).Div(hundred))
	totals.AfterDiscount = totals.Subtotal.Sub(totals.DiscountAmt)

	rounded := totals.AfterDiscount.Round(0)
	totals.RoundOff = round2(rounded.Sub(totals.AfterDiscount))
	totals.FinalAmount = rounded.IntPart()
	return totals
}
