package domain

import (
	"context"
	"errors"
)

type ListRequest struct {
	ItemName string `form:"item_name"`
	ItemCode string `form:"item_code"`
	// InStock filters out exhausted batches when true.
	InStock bool `form:"in_stock"`
}

type UpsertRequest struct {
	ItemCode     string  `json:"item_code"`
	Batch        string  `json:"batch"`
	ItemName     string  `json:"item_name"`
	Pack         string  `json:"pack"`
	Expiry       string  `json:"expiry"`
	Quantity     int     `json:"quantity"`
	MRP          string  `json:"mrp"`
	SellingPrice string  `json:"selling_price"`
	CGSTRate     float64 `json:"cgst_rate"`
	SGSTRate     float64 `json:"sgst_rate"`
}

// Service is the inventory collaborator consumed by the invoice flow.
// Mutations are single attempts with no retry.
type Service interface {
	GetAll(ctx context.Context, req ListRequest) ([]StockBatch, error)
	FindByCodeBatch(ctx context.Context, itemCode, batch string) (*StockBatch, error)
	Upsert(ctx context.Context, req UpsertRequest) (*StockBatch, error)
	DecrementStockByCodeBatch(ctx context.Context, itemCode, batch string, quantity int) (MutationResult, error)
	IncrementStockByCodeBatch(ctx context.Context, itemCode, batch string, quantity int) (MutationResult, error)
}

var (
	ErrInvalidItemCode = errors.New("invalid_item_code")
	ErrInvalidItemName = errors.New("invalid_item_name")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrBatchNotFound   = errors.New("batch_not_found")
)
