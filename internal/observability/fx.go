package observability

import (
	"github.com/aushadhi/pos/internal/observability/logger"
	"github.com/aushadhi/pos/internal/observability/metrics"
	"github.com/aushadhi/pos/internal/observability/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(logger.NewLogger),
	fx.Provide(tracing.FromAppConfig),
	fx.Provide(tracing.NewProvider),
	fx.Provide(metrics.NewHTTPMetrics),
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)
