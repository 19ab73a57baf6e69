package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// DailySalesSummary is the persisted rollup for one business day.
type DailySalesSummary struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id,string"`
	Day           string          `gorm:"type:text;not null;uniqueIndex" json:"day"` // YYYY-MM-DD
	InvoiceCount  int             `gorm:"not null;default:0" json:"invoice_count"`
	ReturnCount   int             `gorm:"not null;default:0" json:"return_count"`
	GrossAmount   decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"gross_amount"`
	CGSTAmount    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"sgst_amount"`
	DiscountTotal decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"discount_total"`
	SalesTotal    int64           `gorm:"not null;default:0" json:"sales_total"`
	ReturnsTotal  int64           `gorm:"not null;default:0" json:"returns_total"`
	NetTotal      int64           `gorm:"not null;default:0" json:"net_total"`
	SavedFromMRP  decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"saved_from_mrp"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (DailySalesSummary) TableName() string { return "daily_sales_summaries" }

// SlabBreakdown reports tax collected per combined GST slab for a day.
type SlabBreakdown struct {
	SlabPercent float64         `json:"slab_percent"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	CGSTAmount  decimal.Decimal `json:"cgst_amount"`
	SGSTAmount  decimal.Decimal `json:"sgst_amount"`
	Total       decimal.Decimal `json:"total"`
}

type DailyReport struct {
	Summary DailySalesSummary `json:"summary"`
	Slabs   []SlabBreakdown   `json:"slabs"`
}

type RangeRequest struct {
	From time.Time
	To   time.Time
}

type Service interface {
	// Summarize computes a day's report without persisting it.
	Summarize(ctx context.Context, day time.Time) (DailyReport, error)
	// RollupDay computes and upserts the persisted summary for a day.
	RollupDay(ctx context.Context, day time.Time) (DailySalesSummary, error)
	// ListRange returns persisted summaries between From and To inclusive.
	ListRange(ctx context.Context, req RangeRequest) ([]DailySalesSummary, error)
	// ExportRangeXLSX renders summaries for a range as an Excel workbook.
	ExportRangeXLSX(ctx context.Context, req RangeRequest) ([]byte, error)
}

var (
	ErrInvalidDay   = errors.New("invalid_day")
	ErrInvalidRange = errors.New("invalid_range")
)
