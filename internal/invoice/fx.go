package invoice

import (
	"github.com/aushadhi/pos/internal/invoice/render"
	"github.com/aushadhi/pos/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewRenderer),
	fx.Provide(render.NewPDFRenderer),
	fx.Provide(service.NewService),
)
