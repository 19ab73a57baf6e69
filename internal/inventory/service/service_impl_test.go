package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aushadhi/pos/internal/events"
	"github.com/aushadhi/pos/internal/inventory/domain"
	"github.com/aushadhi/pos/internal/inventory/repository"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupInventoryTest(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.StockBatch{}, &events.OutboxRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	return NewService(ServiceParam{
		DB:     db,
		Log:    zap.NewNop(),
		GenID:  node,
		Repo:   repository.Provide(),
		Outbox: events.NewOutbox(db, node),
	})
}

func upsertRequest(itemCode, batch string, quantity int) domain.UpsertRequest {
	return domain.UpsertRequest{
		ItemCode:     itemCode,
		Batch:        batch,
		ItemName:     "Item " + itemCode,
		Pack:         "10T",
		Expiry:       "06/27",
		Quantity:     quantity,
		MRP:          "130.00",
		SellingPrice: "115.00",
		CGSTRate:     6,
		SGSTRate:     6,
	}
}

func TestUpsertAddsQuantityOntoExistingBatch(t *testing.T) {
	svc := setupInventoryTest(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, upsertRequest("PCM500", "B001", 10))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if first.StockQuantity != 10 {
		t.Fatalf("stock = %d, want 10", first.StockQuantity)
	}

	req := upsertRequest("PCM500", "B001", 5)
	req.SellingPrice = "112.00"
	second, err := svc.Upsert(ctx, req)
	if err != nil {
		t.Fatalf("upsert again: %v", err)
	}
	if second.StockQuantity != 15 {
		t.Fatalf("stock = %d, want 15", second.StockQuantity)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same batch row")
	}
	if got := second.SellingPrice.StringFixed(2); got != "112.00" {
		t.Fatalf("selling price = %s, want 112.00", got)
	}
}

func TestUpsertValidation(t *testing.T) {
	svc := setupInventoryTest(t)
	ctx := context.Background()

	req := upsertRequest("", "B001", 1)
	if _, err := svc.Upsert(ctx, req); !errors.Is(err, domain.ErrInvalidItemCode) {
		t.Fatalf("expected invalid item code, got %v", err)
	}

	req = upsertRequest("PCM500", "B001", 1)
	req.ItemName = "  "
	if _, err := svc.Upsert(ctx, req); !errors.Is(err, domain.ErrInvalidItemName) {
		t.Fatalf("expected invalid item name, got %v", err)
	}

	req = upsertRequest("PCM500", "B001", -1)
	if _, err := svc.Upsert(ctx, req); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}

	req = upsertRequest("PCM500", "B001", 1)
	req.MRP = "not-a-price"
	if _, err := svc.Upsert(ctx, req); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected invalid price, got %v", err)
	}
}

func TestDecrementClampsAtZero(t *testing.T) {
	svc := setupInventoryTest(t)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, upsertRequest("PCM500", "B001", 3)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	result, err := svc.DecrementStockByCodeBatch(ctx, "PCM500", "B001", 5)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if result.NewStock != 0 {
		t.Fatalf("new stock = %d, want 0", result.NewStock)
	}
	if result.Shortfall != 2 {
		t.Fatalf("shortfall = %d, want 2", result.Shortfall)
	}
}

func TestMutateUnknownBatch(t *testing.T) {
	svc := setupInventoryTest(t)
	ctx := context.Background()

	_, err := svc.DecrementStockByCodeBatch(ctx, "PCM500", "NOPE", 1)
	if !errors.Is(err, domain.ErrBatchNotFound) {
		t.Fatalf("expected batch not found, got %v", err)
	}
	_, err = svc.IncrementStockByCodeBatch(ctx, "PCM500", "NOPE", 1)
	if !errors.Is(err, domain.ErrBatchNotFound) {
		t.Fatalf("expected batch not found, got %v", err)
	}
}

func TestGetAllSeesFreshWrites(t *testing.T) {
	svc := setupInventoryTest(t)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, upsertRequest("PCM500", "B001", 10)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	batches, err := svc.GetAll(ctx, domain.ListRequest{})
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("batches = %d, want 1", len(batches))
	}

	// A second intake must invalidate the cached catalog.
	if _, err := svc.Upsert(ctx, upsertRequest("AMX250", "C001", 4)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	batches, err = svc.GetAll(ctx, domain.ListRequest{})
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("batches = %d, want 2", len(batches))
	}
}

func TestGetAllInStockFilter(t *testing.T) {
	svc := setupInventoryTest(t)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, upsertRequest("PCM500", "B001", 2)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := svc.Upsert(ctx, upsertRequest("AMX250", "C001", 0)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	batches, err := svc.GetAll(ctx, domain.ListRequest{InStock: true})
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("in-stock batches = %d, want 1", len(batches))
	}
	if batches[0].ItemCode != "PCM500" {
		t.Fatalf("unexpected batch %q", batches[0].ItemCode)
	}
}
