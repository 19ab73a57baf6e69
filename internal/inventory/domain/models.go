package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// StockBatch is one lot of a stock-keeping unit. The same item code can
// appear under several batches with different expiry dates and prices.
type StockBatch struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id,string"`
	ItemCode      string          `gorm:"type:text;not null;uniqueIndex:ux_stock_item_batch,priority:1" json:"item_code"`
	Batch         string          `gorm:"type:text;not null;uniqueIndex:ux_stock_item_batch,priority:2" json:"batch"`
	ItemName      string          `gorm:"type:text;not null" json:"item_name"`
	Pack          string          `gorm:"type:text" json:"pack"`
	Expiry        string          `gorm:"type:text" json:"expiry"` // MM/YY as printed on the strip
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	MRP           decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"mrp"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"selling_price"`
	CGSTRate      float64         `gorm:"not null;default:0" json:"cgst_rate"`
	SGSTRate      float64         `gorm:"not null;default:0" json:"sgst_rate"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (StockBatch) TableName() string { return "stock_batches" }

// MutationResult reports the outcome of a stock increment or decrement.
type MutationResult struct {
	Success   bool   `json:"success"`
	NewStock  int    `json:"new_stock"`
	ItemName  string `json:"item_name"`
	Shortfall int    `json:"shortfall,omitempty"`
}
