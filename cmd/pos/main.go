package main

import (
	"github.com/aushadhi/pos/internal/clock"
	"github.com/aushadhi/pos/internal/config"
	"github.com/aushadhi/pos/internal/events"
	"github.com/aushadhi/pos/internal/inventory"
	"github.com/aushadhi/pos/internal/invoice"
	"github.com/aushadhi/pos/internal/ledger"
	"github.com/aushadhi/pos/internal/migration"
	"github.com/aushadhi/pos/internal/observability"
	"github.com/aushadhi/pos/internal/report"
	"github.com/aushadhi/pos/internal/server"
	"github.com/aushadhi/pos/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func newSnowflakeNode(cfg config.Config) (*snowflake.Node, error) {
	return snowflake.NewNode(cfg.NodeID)
}

func main() {
	fx.New(
		config.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		clock.Module,
		migration.Module,
		fx.Provide(events.NewOutbox),
		inventory.Module,
		ledger.Module,
		invoice.Module,
		report.Module,
		server.Module,
	).Run()
}
