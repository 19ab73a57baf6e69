package migration

import (
	"github.com/aushadhi/pos/internal/events"
	inventorydomain "github.com/aushadhi/pos/internal/inventory/domain"
	invoicedomain "github.com/aushadhi/pos/internal/invoice/domain"
	ledgerdomain "github.com/aushadhi/pos/internal/ledger/domain"
	reportdomain "github.com/aushadhi/pos/internal/report/domain"
	"github.com/aushadhi/pos/internal/sequence"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs schema auto-migration for every persisted model.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running schema migration")
	return db.AutoMigrate(
		&inventorydomain.StockBatch{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceLine{},
		&sequence.Row{},
		&ledgerdomain.LedgerAccount{},
		&ledgerdomain.LedgerEntry{},
		&ledgerdomain.LedgerEntryLine{},
		&events.OutboxRow{},
		&reportdomain.DailySalesSummary{},
	)
}

var Module = fx.Module("migration",
	fx.Invoke(Migrate),
)
