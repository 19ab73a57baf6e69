package service

import (
	"context"
	"strings"
	"time"

	"github.com/aushadhi/pos/internal/cache"
	"github.com/aushadhi/pos/internal/events"
	"github.com/aushadhi/pos/internal/inventory/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const catalogCacheTTL = 30 * time.Second

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	repo   domain.Repository
	outbox *events.Outbox

	catalog cache.Cache[string, []domain.StockBatch]
}

type ServiceParam struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
	Outbox *events.Outbox
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("inventory.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		outbox:  p.Outbox,
		catalog: cache.NewTTLCache[string, []domain.StockBatch](),
	}
}

func (s *Service) GetAll(ctx context.Context, req domain.ListRequest) ([]domain.StockBatch, error) {
	key := catalogKey(req)
	if batches, ok := s.catalog.Get(key); ok {
		return batches, nil
	}

	batches, err := s.repo.List(ctx, s.db, req)
	if err != nil {
		return nil, err
	}
	s.catalog.Set(key, batches, catalogCacheTTL)
	return batches, nil
}

func (s *Service) FindByCodeBatch(ctx context.Context, itemCode, batch string) (*domain.StockBatch, error) {
	itemCode = strings.TrimSpace(itemCode)
	if itemCode == "" {
		return nil, domain.ErrInvalidItemCode
	}
	return s.repo.FindByCodeBatch(ctx, s.db, itemCode, strings.TrimSpace(batch))
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertRequest) (*domain.StockBatch, error) {
	itemCode := strings.TrimSpace(req.ItemCode)
	if itemCode == "" {
		return nil, domain.ErrInvalidItemCode
	}
	itemName := strings.TrimSpace(req.ItemName)
	if itemName == "" {
		return nil, domain.ErrInvalidItemName
	}
	if req.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	mrp, err := parsePrice(req.MRP)
	if err != nil {
		return nil, err
	}
	sellingPrice, err := parsePrice(req.SellingPrice)
	if err != nil {
		return nil, err
	}
	if req.CGSTRate < 0 || req.SGSTRate < 0 {
		return nil, domain.ErrInvalidPrice
	}

	batchName := strings.TrimSpace(req.Batch)
	var saved *domain.StockBatch
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByCodeBatch(ctx, tx, itemCode, batchName)
		if err != nil {
			return err
		}
		if existing == nil {
			existing = &domain.StockBatch{
				ID:        s.genID.Generate(),
				ItemCode:  itemCode,
				Batch:     batchName,
				CreatedAt: time.Now().UTC(),
			}
		}
		existing.ItemName = itemName
		existing.Pack = strings.TrimSpace(req.Pack)
		existing.Expiry = strings.TrimSpace(req.Expiry)
		existing.StockQuantity += req.Quantity
		existing.MRP = mrp
		existing.SellingPrice = sellingPrice
		existing.CGSTRate = req.CGSTRate
		existing.SGSTRate = req.SGSTRate

		if err := s.repo.Save(ctx, tx, existing); err != nil {
			return err
		}
		saved = existing

		if req.Quantity > 0 {
			return s.outbox.PublishTx(ctx, tx, events.Event{
				Type: events.EventStockIntake,
				Payload: map[string]any{
					"item_code": itemCode,
					"batch":     batchName,
					"quantity":  req.Quantity,
					"new_stock": existing.StockQuantity,
				},
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog()
	return saved, nil
}

// DecrementStockByCodeBatch reduces on-hand stock for one batch. Stock is
// clamped at zero; a clamp is reported through Shortfall rather than an
// error so the caller can surface it as a warning.
func (s *Service) DecrementStockByCodeBatch(ctx context.Context, itemCode, batch string, quantity int) (domain.MutationResult, error) {
	return s.mutateStock(ctx, itemCode, batch, -quantity)
}

// IncrementStockByCodeBatch adds returned units back to a batch.
func (s *Service) IncrementStockByCodeBatch(ctx context.Context, itemCode, batch string, quantity int) (domain.MutationResult, error) {
	return s.mutateStock(ctx, itemCode, batch, quantity)
}

func (s *Service) mutateStock(ctx context.Context, itemCode, batch string, delta int) (domain.MutationResult, error) {
	itemCode = strings.TrimSpace(itemCode)
	if itemCode == "" {
		return domain.MutationResult{}, domain.ErrInvalidItemCode
	}
	if delta == 0 {
		return domain.MutationResult{}, domain.ErrInvalidQuantity
	}

	var result domain.MutationResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.repo.FindByCodeBatch(ctx, tx, itemCode, strings.TrimSpace(batch))
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrBatchNotFound
		}

		newStock := row.StockQuantity + delta
		shortfall := 0
		if newStock < 0 {
			shortfall = -newStock
			newStock = 0
		}
		if err := s.repo.UpdateQuantity(ctx, tx, row.ID, newStock); err != nil {
			return err
		}
		result = domain.MutationResult{
			Success:   true,
			NewStock:  newStock,
			ItemName:  row.ItemName,
			Shortfall: shortfall,
		}
		return nil
	})
	if err != nil {
		return domain.MutationResult{}, err
	}

	if result.Shortfall > 0 {
		s.log.Warn("stock clamped at zero",
			zap.String("item_code", itemCode),
			zap.String("batch", batch),
			zap.Int("shortfall", result.Shortfall),
		)
	}
	s.invalidateCatalog()
	return result, nil
}

func (s *Service) invalidateCatalog() {
	// Catalog entries are keyed per filter; dropping the unfiltered key
	// keeps the picker fresh and lets the rest age out via TTL.
	s.catalog.Delete(catalogKey(domain.ListRequest{}))
	s.catalog.Delete(catalogKey(domain.ListRequest{InStock: true}))
}

func catalogKey(req domain.ListRequest) string {
	key := strings.ToLower(strings.TrimSpace(req.ItemName)) + "|" + strings.TrimSpace(req.ItemCode)
	if req.InStock {
		key += "|in_stock"
	}
	return key
}

func parsePrice(raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || value.Sign() < 0 {
		return decimal.Zero, domain.ErrInvalidPrice
	}
	return value, nil
}
