package domain

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// InvoiceKind distinguishes sales from sales returns.
type InvoiceKind string

const (
	InvoiceKindSale   InvoiceKind = "sale"
	InvoiceKindReturn InvoiceKind = "return"
)

// Payment modes accepted at the counter.
const (
	PaymentModeCash   = "cash"
	PaymentModeCard   = "card"
	PaymentModeUPI    = "upi"
	PaymentModeCredit = "credit"
)

// FormatNumber renders the printable bill number for a kind and serial.
func FormatNumber(kind InvoiceKind, invoiceNo int64) string {
	prefix := "INV"
	if kind == InvoiceKindReturn {
		prefix = "RET"
	}
	return fmt.Sprintf("%s-%06d", prefix, invoiceNo)
}

// Invoice is a persisted bill. Derived amounts are frozen copies of the
// engine output at save time; they are never recomputed from lines.
type Invoice struct {
	ID                snowflake.ID      `gorm:"primaryKey" json:"id,string"`
	InvoiceNo         int64             `gorm:"not null;uniqueIndex:ux_invoices_kind_no,priority:2" json:"invoice_no"`
	Kind              InvoiceKind       `gorm:"type:text;not null;uniqueIndex:ux_invoices_kind_no,priority:1" json:"kind"`
	OriginalInvoiceID *snowflake.ID     `gorm:"index" json:"original_invoice_id,string,omitempty"`
	InvoiceDate       time.Time         `gorm:"not null;index" json:"invoice_date"`
	CustomerName      string            `gorm:"type:text" json:"customer_name"`
	CustomerPhone     string            `gorm:"type:text" json:"customer_phone"`
	DoctorName        string            `gorm:"type:text" json:"doctor_name"`
	PaymentMode       string            `gorm:"type:text;not null;default:'cash'" json:"payment_mode"`
	DiscountPercent   float64           `gorm:"not null;default:0" json:"discount_percent"`
	GrossAmount       decimal.Decimal   `gorm:"type:decimal(20,2);not null" json:"gross_amount"`
	CGSTAmount        decimal.Decimal   `gorm:"type:decimal(20,2);not null" json:"cgst_amount"`
	SGSTAmount        decimal.Decimal   `gorm:"type:decimal(20,2);not null" json:"sgst_amount"`
	Subtotal          decimal.Decimal   `gorm:"type:decimal(20,2);not null" json:"subtotal"`
	DiscountAmount    decimal.Decimal   `gorm:"type:decimal(20,2);not null" json:"discount_amount"`
	RoundOff          decimal.Decimal   `gorm:"type:decimal(20,2);not null" json:"round_off"`
	FinalAmount       int64             `gorm:"not null" json:"final_amount"`
	SavedFromMRP      decimal.Decimal   `gorm:"type:decimal(20,2);not null" json:"saved_from_mrp"`
	Metadata          datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt         time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Lines []InvoiceLine `gorm:"foreignKey:InvoiceID" json:"lines,omitempty"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceLine is a frozen draft row. Rate is GST-inclusive, so Total is
// quantity times rate and GrossAmount is the extracted taxable value.
type InvoiceLine struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id,string"`
	InvoiceID   snowflake.ID    `gorm:"not null;index" json:"invoice_id,string"`
	ItemCode    string          `gorm:"type:text;not null" json:"item_code"`
	ItemName    string          `gorm:"type:text;not null" json:"item_name"`
	Batch       string          `gorm:"type:text" json:"batch"`
	Expiry      string          `gorm:"type:text" json:"expiry"`
	Pack        string          `gorm:"type:text" json:"pack"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Rate        decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"rate"`
	MRP         decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"mrp"`
	CGSTPercent float64         `gorm:"not null;default:0" json:"cgst_percent"`
	SGSTPercent float64         `gorm:"not null;default:0" json:"sgst_percent"`
	GrossAmount decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"gross_amount"`
	CGSTAmount  decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"cgst_amount"`
	SGSTAmount  decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"sgst_amount"`
	Total       decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"total"`
	CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (InvoiceLine) TableName() string { return "invoice_lines" }
