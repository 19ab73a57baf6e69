package inventory

import (
	"github.com/aushadhi/pos/internal/inventory/repository"
	"github.com/aushadhi/pos/internal/inventory/service"
	"go.uber.org/fx"
)

var Module = fx.Module("inventory.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
