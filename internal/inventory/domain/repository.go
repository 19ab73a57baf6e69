package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, db *gorm.DB, filter ListRequest) ([]StockBatch, error)
	FindByCodeBatch(ctx context.Context, db *gorm.DB, itemCode, batch string) (*StockBatch, error)
	Save(ctx context.Context, db *gorm.DB, batch *StockBatch) error
	UpdateQuantity(ctx context.Context, db *gorm.DB, id snowflake.ID, quantity int) error
}
