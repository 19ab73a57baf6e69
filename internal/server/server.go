package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aushadhi/pos/internal/clock"
	"github.com/aushadhi/pos/internal/config"
	inventorydomain "github.com/aushadhi/pos/internal/inventory/domain"
	invoicedomain "github.com/aushadhi/pos/internal/invoice/domain"
	"github.com/aushadhi/pos/internal/invoice/render"
	"github.com/aushadhi/pos/internal/observability/logger"
	"github.com/aushadhi/pos/internal/observability/metrics"
	"github.com/aushadhi/pos/internal/observability/tracing"
	reportdomain "github.com/aushadhi/pos/internal/report/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Server exposes the POS HTTP API.
type Server struct {
	log       *zap.Logger
	cfg       config.Config
	clk       clock.Clock
	invoices  invoicedomain.Service
	inventory inventorydomain.Service
	reports   reportdomain.Service
	html      render.Renderer
	pdf       render.PDFRenderer
}

type ServerParam struct {
	fx.In

	Log       *zap.Logger
	Config    config.Config
	Clock     clock.Clock
	Invoices  invoicedomain.Service
	Inventory inventorydomain.Service
	Reports   reportdomain.Service
	HTML      render.Renderer
	PDF       render.PDFRenderer
}

func NewServer(p ServerParam) *Server {
	return &Server{
		log:       p.Log.Named("server"),
		cfg:       p.Config,
		clk:       p.Clock,
		invoices:  p.Invoices,
		inventory: p.Inventory,
		reports:   p.Reports,
		html:      p.HTML,
		pdf:       p.PDF,
	}
}

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(cfg config.Config, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{SkipPaths: []string{"/healthz"}}))
	engine.Use(tracing.GinMiddleware())
	engine.Use(metrics.GinMiddleware(httpMetrics))
	return engine
}

// RegisterRoutes mounts all API routes onto the engine.
func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	writeLimit := newRateLimiter(s.cfg.Limits.WriteLimit, s.cfg.Limits.WriteWindow)

	api := engine.Group("/api")
	{
		invoices := api.Group("/invoices")
		invoices.POST("/quote", s.QuoteInvoice)
		invoices.POST("/pick", s.PickBatch)
		invoices.POST("", writeLimit.Middleware(), s.SaveInvoice)
		invoices.GET("", s.ListInvoices)
		invoices.GET("/:id", s.GetInvoice)
		invoices.GET("/:id/bill", s.RenderBill)
		invoices.POST("/:id/return", writeLimit.Middleware(), s.CreateReturn)

		stock := api.Group("/stock")
		stock.GET("", s.ListStock)
		stock.POST("", writeLimit.Middleware(), s.UpsertStock)

		reports := api.Group("/reports")
		reports.GET("/daily", s.DailyReport)
		reports.GET("/daily/export", s.ExportDailyReport)
	}
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, engine *gin.Engine, server *Server, cfg config.Config, log *zap.Logger) {
	server.RegisterRoutes(engine)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return httpServer.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(RunHTTP),
)
