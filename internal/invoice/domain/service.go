package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aushadhi/pos/internal/pricing"
	"github.com/bwmarrin/snowflake"
)

type QuoteRequest struct {
	Lines           []DraftLine `json:"lines"`
	DiscountPercent float64     `json:"discount_percent"`
}

// PickRequest adds one batch to an in-progress draft. The picked
// quantity is clamped against what the batch still has open.
type PickRequest struct {
	Lines           []DraftLine `json:"lines"`
	ItemCode        string      `json:"item_code"`
	Batch           string      `json:"batch"`
	Quantity        int         `json:"quantity"`
	DiscountPercent float64     `json:"discount_percent"`
}

// BatchAvailability is what the product picker shows for one batch.
type BatchAvailability struct {
	ItemCode  string `json:"item_code"`
	Batch     string `json:"batch"`
	Available int    `json:"available"`
}

type QuoteResponse struct {
	Lines        []DraftLine         `json:"lines"`
	Totals       pricing.Totals      `json:"totals"`
	Availability []BatchAvailability `json:"availability"`
}

type SaveRequest struct {
	InvoiceDate     *time.Time  `json:"invoice_date"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	DoctorName      string      `json:"doctor_name"`
	PaymentMode     string      `json:"payment_mode"`
	DiscountPercent float64     `json:"discount_percent"`
	Lines           []DraftLine `json:"lines"`
}

// StockWarning records a stock mutation that failed after the invoice
// was persisted. Warnings never roll the invoice back.
type StockWarning struct {
	ItemCode string `json:"item_code"`
	Batch    string `json:"batch"`
	Reason   string `json:"reason"`
}

type SaveResponse struct {
	Invoice  Invoice        `json:"invoice"`
	Warnings []StockWarning `json:"warnings,omitempty"`
}

type ReturnRequest struct {
	OriginalInvoiceID string      `json:"original_invoice_id"`
	Reason            string      `json:"reason"`
	Lines             []DraftLine `json:"lines"`
}

type ListRequest struct {
	Kind     string     `form:"kind"`
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
	Limit    int        `form:"limit"`
}

type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (QuoteResponse, error)
	Pick(ctx context.Context, req PickRequest) (QuoteResponse, error)
	Save(ctx context.Context, req SaveRequest) (SaveResponse, error)
	CreateReturn(ctx context.Context, req ReturnRequest) (SaveResponse, error)
	List(ctx context.Context, req ListRequest) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (*Invoice, error)
}

// ParseID parses a client-supplied invoice ID.
func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrEmptyInvoice      = errors.New("empty_invoice")
	ErrInvalidQuantity   = errors.New("invalid_quantity")
	ErrInvalidRate       = errors.New("invalid_rate")
	ErrInvalidLine       = errors.New("invalid_line")
	ErrInvalidPayment    = errors.New("invalid_payment_mode")
	ErrInsufficientStock = errors.New("insufficient_stock")
	ErrInvalidInvoiceID  = errors.New("invalid_invoice_id")
	ErrInvoiceNotFound   = errors.New("invoice_not_found")
	ErrNotReturnable     = errors.New("invoice_not_returnable")
	ErrReturnExceedsSold = errors.New("return_exceeds_sold_quantity")
)
