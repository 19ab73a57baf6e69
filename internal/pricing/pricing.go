package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// All monetary arithmetic is done on decimals and rounded to two places
// after every step. Rounding is half-up (away from zero for the positive
// values this package deals in).

var ErrInvalidInput = errors.New("invalid_input")

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	// rateTolerance is the maximum distance between a candidate
	// post-discount price and the reference selling price for a
	// discount tier to match.
	rateTolerance = decimal.NewFromFloat(0.5)
)

// rateTier pairs an off-MRP discount with the further margin cut applied
// when the reference selling price sits on that tier.
type rateTier struct {
	discountPct decimal.Decimal
	marginPct   decimal.Decimal
}

var rateTiers = []rateTier{
	{discountPct: decimal.NewFromInt(12), marginPct: decimal.NewFromInt(7)},
	{discountPct: decimal.NewFromInt(18), marginPct: decimal.NewFromInt(13)},
	{discountPct: decimal.NewFromInt(5), marginPct: decimal.Zero},
}

// LineTax holds the derived amounts for a single invoice line. Rate is
// GST-inclusive, so Total is what the customer pays for the line and
// GrossAmt is the taxable value extracted from it.
type LineTax struct {
	GrossAmt decimal.Decimal
	CGSTAmt  decimal.Decimal
	SGSTAmt  decimal.Decimal
	Total    decimal.Decimal
}

// DeriveRate suggests a unit selling rate from the MRP and the reference
// GST-inclusive selling price held in stock master data.
//
// It probes the fixed discount tiers (12%, 18%, 5% off MRP); when the
// reference price lands within 0.5 of a tier's post-discount price, the
// tier's margin cut is applied on top. When no tier matches, the
// reference price is returned unchanged.
func DeriveRate(mrp, referenceSellingPrice decimal.Decimal) decimal.Decimal {
	if mrp.Sign() <= 0 {
		return round2(referenceSellingPrice)
	}
	for _, tier := range rateTiers {
		candidate := round2(mrp.Mul(one.Sub(tier.discountPct.Div(hundred))))
		if candidate.Sub(referenceSellingPrice).Abs().Cmp(rateTolerance) <= 0 {
			if tier.marginPct.IsZero() {
				return candidate
			}
			return round2(candidate.Mul(one.Sub(tier.marginPct.Div(hundred))))
		}
	}
	return round2(referenceSellingPrice)
}

// ComputeLineTax extracts taxable value and split GST amounts from a
// GST-inclusive unit rate. Tax is backed out of the line total, never
// added on top of it.
func ComputeLineTax(quantity int, rate decimal.Decimal, cgstPercent, sgstPercent float64) (LineTax, error) {
	if quantity < 0 || rate.Sign() < 0 || cgstPercent < 0 || sgstPercent < 0 {
		return LineTax{}, ErrInvalidInput
	}

	total := round2(rate.Mul(decimal.NewFromInt(int64(quantity))))

	cgst := decimal.NewFromFloat(cgstPercent)
	sgst := decimal.NewFromFloat(sgstPercent)
	combined := cgst.Add(sgst)
	if combined.IsZero() {
		return LineTax{
			GrossAmt: total,
			CGSTAmt:  decimal.Zero.Round(2),
			SGSTAmt:  decimal.Zero.Round(2),
			Total:    total,
		}, nil
	}

	gross := round2(total.Div(one.Add(combined.Div(hundred))))
	return LineTax{
		GrossAmt: gross,
		CGSTAmt:  round2(gross.Mul(cgst).Div(hundred)),
		SGSTAmt:  round2(gross.Mul(sgst).Div(hundred)),
		Total:    total,
	}, nil
}

func round2(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}
