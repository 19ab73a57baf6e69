package render

import (
	"time"

	"github.com/shopspring/decimal"
)

// RenderInput is the deterministic input used for bill rendering. Every
// amount arrives already rounded; renderers never recompute.
type RenderInput struct {
	Store   StoreView
	Invoice InvoiceView
	Lines   []LineView
}

// StoreView identifies the pharmacy on the printed bill.
type StoreView struct {
	Name    string
	Address string
	Phone   string
	GSTIN   string
	DLNo    string
}

type InvoiceView struct {
	Number         string
	Kind           string
	Date           time.Time
	CustomerName   string
	CustomerPhone  string
	DoctorName     string
	PaymentMode    string
	GrossAmount    decimal.Decimal
	CGSTAmount     decimal.Decimal
	SGSTAmount     decimal.Decimal
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	RoundOff       decimal.Decimal
	FinalAmount    int64
	SavedFromMRP   decimal.Decimal
}

type LineView struct {
	ItemName    string
	Batch       string
	Expiry      string
	Pack        string
	Quantity    int
	MRP         decimal.Decimal
	Rate        decimal.Decimal
	GSTPercent  float64
	GrossAmount decimal.Decimal
	Total       decimal.Decimal
}

// Renderer renders a bill as printable HTML.
type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}

// PDFRenderer renders a bill as a PDF document.
type PDFRenderer interface {
	RenderPDF(input RenderInput) ([]byte, error)
}
