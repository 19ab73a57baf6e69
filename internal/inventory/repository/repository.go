package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aushadhi/pos/internal/inventory/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type gormRepository struct{}

// Provide returns the gorm-backed stock repository.
func Provide() domain.Repository {
	return gormRepository{}
}

func (gormRepository) List(ctx context.Context, db *gorm.DB, filter domain.ListRequest) ([]domain.StockBatch, error) {
	query := db.WithContext(ctx).Model(&domain.StockBatch{})
	if name := strings.TrimSpace(filter.ItemName); name != "" {
		query = query.Where("item_name LIKE ?", name+"%")
	}
	if code := strings.TrimSpace(filter.ItemCode); code != "" {
		query = query.Where("item_code = ?", code)
	}
	if filter.InStock {
		query = query.Where("stock_quantity > 0")
	}

	var batches []domain.StockBatch
	if err := query.Order("item_name ASC, batch ASC").Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (gormRepository) FindByCodeBatch(ctx context.Context, db *gorm.DB, itemCode, batch string) (*domain.StockBatch, error) {
	var row domain.StockBatch
	err := db.WithContext(ctx).
		Where("item_code = ? AND batch = ?", itemCode, batch).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (gormRepository) Save(ctx context.Context, db *gorm.DB, batch *domain.StockBatch) error {
	batch.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).Save(batch).Error
}

func (gormRepository) UpdateQuantity(ctx context.Context, db *gorm.DB, id snowflake.ID, quantity int) error {
	return db.WithContext(ctx).
		Model(&domain.StockBatch{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock_quantity": quantity,
			"updated_at":     time.Now().UTC(),
		}).Error
}
