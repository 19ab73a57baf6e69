package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", value, err)
	}
	return d
}

func wantDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(t, want)) {
		t.Fatalf("%s = %s, want %s", name, got.String(), want)
	}
}

func TestComputeLineTaxReverseExtraction(t *testing.T) {
	line, err := ComputeLineTax(10, dec(t, "115"), 6, 6)
	if err != nil {
		t.Fatalf("compute line tax: %v", err)
	}
	wantDecimal(t, "total", line.Total, "1150.00")
	wantDecimal(t, "gross", line.GrossAmt, "1026.79")
	wantDecimal(t, "cgst", line.CGSTAmt, "61.61")
	wantDecimal(t, "sgst", line.SGSTAmt, "61.61")
}

func TestComputeLineTaxZeroTax(t *testing.T) {
	line, err := ComputeLineTax(3, dec(t, "42.50"), 0, 0)
	if err != nil {
		t.Fatalf("compute line tax: %v", err)
	}
	wantDecimal(t, "total", line.Total, "127.50")
	wantDecimal(t, "gross", line.GrossAmt, "127.50")
	if !line.CGSTAmt.IsZero() || !line.SGSTAmt.IsZero() {
		t.Fatalf("expected zero tax amounts, got cgst=%s sgst=%s", line.CGSTAmt, line.SGSTAmt)
	}
}

func TestComputeLineTaxComponentsSumToTotal(t *testing.T) {
	cases := []struct {
		qty  int
		rate string
		cgst float64
		sgst float64
	}{
		{1, "9.99", 2.5, 2.5},
		{7, "33.33", 6, 6},
		{10, "115", 9, 9},
		{25, "18.40", 14, 14},
	}
	slack := dec(t, "0.02")
	for _, tc := range cases {
		line, err := ComputeLineTax(tc.qty, dec(t, tc.rate), tc.cgst, tc.sgst)
		if err != nil {
			t.Fatalf("compute line tax qty=%d rate=%s: %v", tc.qty, tc.rate, err)
		}
		sum := line.GrossAmt.Add(line.CGSTAmt).Add(line.SGSTAmt)
		if sum.Sub(line.Total).Abs().Cmp(slack) > 0 {
			t.Fatalf("qty=%d rate=%s: gross+cgst+sgst = %s, total = %s", tc.qty, tc.rate, sum, line.Total)
		}
	}
}

func TestComputeLineTaxIdempotent(t *testing.T) {
	first, err := ComputeLineTax(10, dec(t, "115"), 6, 6)
	if err != nil {
		t.Fatalf("compute line tax: %v", err)
	}
	second, err := ComputeLineTax(10, dec(t, "115"), 6, 6)
	if err != nil {
		t.Fatalf("compute line tax: %v", err)
	}
	if !first.Total.Equal(second.Total) || !first.GrossAmt.Equal(second.GrossAmt) ||
		!first.CGSTAmt.Equal(second.CGSTAmt) || !first.SGSTAmt.Equal(second.SGSTAmt) {
		t.Fatalf("recomputation diverged: %+v vs %+v", first, second)
	}
}

func TestComputeLineTaxRejectsNegativeInputs(t *testing.T) {
	if _, err := ComputeLineTax(-1, dec(t, "10"), 6, 6); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative quantity: got %v", err)
	}
	if _, err := ComputeLineTax(1, dec(t, "-10"), 6, 6); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative rate: got %v", err)
	}
	if _, err := ComputeLineTax(1, dec(t, "10"), -6, 6); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative cgst: got %v", err)
	}
}

func TestDeriveRateTiers(t *testing.T) {
	cases := []struct {
		name string
		mrp  string
		ref  string
		want string
	}{
		{"twelve percent tier takes further seven off", "100", "88", "81.84"},
		{"eighteen percent tier takes further thirteen off", "100", "82", "71.34"},
		{"five percent tier passes through", "100", "95", "95.00"},
		{"tolerance window matches near tier", "100", "88.40", "81.84"},
		{"no tier falls back to reference", "100", "90", "90"},
		{"zero mrp falls back to reference", "0", "55.55", "55.55"},
	}
	for _, tc := range cases {
		got := DeriveRate(dec(t, tc.mrp), dec(t, tc.ref))
		if !got.Equal(dec(t, tc.want)) {
			t.Fatalf("%s: DeriveRate(%s, %s) = %s, want %s", tc.name, tc.mrp, tc.ref, got, tc.want)
		}
	}
}

func TestComputeInvoiceTotals(t *testing.T) {
	lineA, err := ComputeLineTax(10, dec(t, "115"), 6, 6)
	if err != nil {
		t.Fatalf("line a: %v", err)
	}
	lineB, err := ComputeLineTax(5, dec(t, "100"), 6, 6)
	if err != nil {
		t.Fatalf("line b: %v", err)
	}

	totals := ComputeInvoiceTotals([]Line{
		{Quantity: 10, Rate: dec(t, "115"), MRP: dec(t, "120"), Tax: lineA},
		{Quantity: 5, Rate: dec(t, "100"), MRP: dec(t, "100"), Tax: lineB},
	}, 10)

	wantDecimal(t, "subtotal", totals.Subtotal, "1650.00")
	wantDecimal(t, "discount", totals.DiscountAmt, "165.00")
	wantDecimal(t, "after discount", totals.AfterDiscount, "1485.00")
	wantDecimal(t, "round off", totals.RoundOff, "0.00")
	if totals.FinalAmount != 1485 {
		t.Fatalf("final amount = %d, want 1485", totals.FinalAmount)
	}
	// 5 saved per unit on line A only.
	wantDecimal(t, "saved from mrp", totals.SavedFromMRP, "50.00")
}

func TestComputeInvoiceTotalsRoundOffHalfUp(t *testing.T) {
	line, err := ComputeLineTax(1, dec(t, "1484.50"), 0, 0)
	if err != nil {
		t.Fatalf("line: %v", err)
	}
	totals := ComputeInvoiceTotals([]Line{
		{Quantity: 1, Rate: dec(t, "1484.50"), MRP: dec(t, "1484.50"), Tax: line},
	}, 0)

	// Half-up policy: .50 rounds away from zero.
	if totals.FinalAmount != 1485 {
		t.Fatalf("final amount = %d, want 1485", totals.FinalAmount)
	}
	wantDecimal(t, "round off", totals.RoundOff, "0.50")
}

func TestComputeInvoiceTotalsNegativeDiscountIgnored(t *testing.T) {
	line, err := ComputeLineTax(2, dec(t, "50"), 6, 6)
	if err != nil {
		t.Fatalf("line: %v", err)
	}
	totals := ComputeInvoiceTotals([]Line{
		{Quantity: 2, Rate: dec(t, "50"), MRP: dec(t, "50"), Tax: line},
	}, -5)
	wantDecimal(t, "discount", totals.DiscountAmt, "0.00")
	wantDecimal(t, "after discount", totals.AfterDiscount, "100.00")
}
