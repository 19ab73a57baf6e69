package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleInput() RenderInput {
	return RenderInput{
		Store: StoreView{
			Name:    "Aushadhi Pharmacy",
			Address: "12 MG Road, Pune",
			Phone:   "020-12345678",
			GSTIN:   "27ABCDE1234F1Z5",
			DLNo:    "MH-PZ-123456",
		},
		Invoice: InvoiceView{
			Number:         "INV-000042",
			Kind:           "sale",
			Date:           time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			CustomerName:   "Asha Kulkarni",
			CustomerPhone:  "9876543210",
			DoctorName:     "Dr. Mehta",
			PaymentMode:    "cash",
			GrossAmount:    decimal.RequireFromString("1026.79"),
			CGSTAmount:     decimal.RequireFromString("61.61"),
			SGSTAmount:     decimal.RequireFromString("61.61"),
			Subtotal:       decimal.RequireFromString("1150.00"),
			DiscountAmount: decimal.RequireFromString("0.00"),
			RoundOff:       decimal.RequireFromString("0.00"),
			FinalAmount:    1150,
			SavedFromMRP:   decimal.RequireFromString("150.00"),
		},
		Lines: []LineView{
			{
				ItemName:    "Paracetamol 500mg",
				Batch:       "B001",
				Expiry:      "12/27",
				Pack:        "10T",
				Quantity:    10,
				MRP:         decimal.RequireFromString("130.00"),
				Rate:        decimal.RequireFromString("115.00"),
				GSTPercent:  12,
				GrossAmount: decimal.RequireFromString("1026.79"),
				Total:       decimal.RequireFromString("1150.00"),
			},
		},
	}
}

func TestRenderHTMLSale(t *testing.T) {
	page, err := NewRenderer().RenderHTML(sampleInput())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Tax Invoice",
		"INV-000042",
		"Aushadhi Pharmacy",
		"27ABCDE1234F1Z5",
		"Paracetamol 500mg",
		"B001",
		"14-03-2026",
		"1150",
		"150.00",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("rendered bill missing %q", want)
		}
	}
}

func TestRenderHTMLReturnUsesCreditNoteTitle(t *testing.T) {
	input := sampleInput()
	input.Invoice.Kind = "return"
	input.Invoice.Number = "RET-000003"

	page, err := NewRenderer().RenderHTML(input)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(page, "Credit Note") {
		t.Fatalf("expected credit note title")
	}
	if !strings.Contains(page, "RET-000003") {
		t.Fatalf("expected return number")
	}
}

func TestRenderPDF(t *testing.T) {
	doc, err := NewPDFRenderer().RenderPDF(sampleInput())
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if len(doc) == 0 {
		t.Fatalf("empty pdf output")
	}
	if !strings.HasPrefix(string(doc), "%PDF") {
		t.Fatalf("output is not a pdf document")
	}
}
