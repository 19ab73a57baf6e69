package service

import (
	"context"
	"time"

	"github.com/aushadhi/pos/internal/clock"
	"github.com/aushadhi/pos/internal/events"
	invoicedomain "github.com/aushadhi/pos/internal/invoice/domain"
	reportdomain "github.com/aushadhi/pos/internal/report/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dayLayout = "2006-01-02"

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	clk    clock.Clock
	outbox *events.Outbox
}

type ServiceParam struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Outbox *events.Outbox
}

func NewService(p ServiceParam) reportdomain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("report.service"),
		genID:  p.GenID,
		clk:    p.Clock,
		outbox: p.Outbox,
	}
}

type headerRow struct {
	Kind          string
	Count         int
	GrossAmount   decimal.Decimal
	CGSTAmount    decimal.Decimal
	SGSTAmount    decimal.Decimal
	DiscountTotal decimal.Decimal
	FinalTotal    int64
	SavedFromMRP  decimal.Decimal
}

func (s *Service) Summarize(ctx context.Context, day time.Time) (reportdomain.DailyReport, error) {
	if day.IsZero() {
		return reportdomain.DailyReport{}, reportdomain.ErrInvalidDay
	}
	start := day.UTC().Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, 1)

	var rows []headerRow
	err := s.db.WithContext(ctx).Raw(
		`SELECT kind,
		        COUNT(*) AS count,
		        COALESCE(SUM(gross_amount), 0) AS gross_amount,
		        COALESCE(SUM(cgst_amount), 0) AS cgst_amount,
		        COALESCE(SUM(sgst_amount), 0) AS sgst_amount,
		        COALESCE(SUM(discount_amount), 0) AS discount_total,
		        COALESCE(SUM(final_amount), 0) AS final_total,
		        COALESCE(SUM(saved_from_mrp), 0) AS saved_from_mrp
		 FROM invoices
		 WHERE invoice_date >= ? AND invoice_date < ?
		 GROUP BY kind`,
		start,
		end,
	).Scan(&rows).Error
	if err != nil {
		return reportdomain.DailyReport{}, err
	}

	summary := reportdomain.DailySalesSummary{
		Day:           start.Format(dayLayout),
		GrossAmount:   decimal.Zero,
		CGSTAmount:    decimal.Zero,
		SGSTAmount:    decimal.Zero,
		DiscountTotal: decimal.Zero,
		SavedFromMRP:  decimal.Zero,
	}
	for _, row := range rows {
		switch invoicedomain.InvoiceKind(row.Kind) {
		case invoicedomain.InvoiceKindSale:
			summary.InvoiceCount = row.Count
			summary.GrossAmount = summary.GrossAmount.Add(row.GrossAmount)
			summary.CGSTAmount = summary.CGSTAmount.Add(row.CGSTAmount)
			summary.SGSTAmount = summary.SGSTAmount.Add(row.SGSTAmount)
			summary.DiscountTotal = summary.DiscountTotal.Add(row.DiscountTotal)
			summary.SalesTotal = row.FinalTotal
			summary.SavedFromMRP = summary.SavedFromMRP.Add(row.SavedFromMRP)
		case invoicedomain.InvoiceKindReturn:
			summary.ReturnCount = row.Count
			summary.ReturnsTotal = row.FinalTotal
			summary.GrossAmount = summary.GrossAmount.Sub(row.GrossAmount)
			summary.CGSTAmount = summary.CGSTAmount.Sub(row.CGSTAmount)
			summary.SGSTAmount = summary.SGSTAmount.Sub(row.SGSTAmount)
		}
	}
	summary.NetTotal = summary.SalesTotal - summary.ReturnsTotal

	slabs, err := s.slabBreakdown(ctx, start, end)
	if err != nil {
		return reportdomain.DailyReport{}, err
	}

	return reportdomain.DailyReport{Summary: summary, Slabs: slabs}, nil
}

func (s *Service) slabBreakdown(ctx context.Context, start, end time.Time) ([]reportdomain.SlabBreakdown, error) {
	var slabs []reportdomain.SlabBreakdown
	err := s.db.WithContext(ctx).Raw(
		`SELECT (invoice_lines.cgst_percent + invoice_lines.sgst_percent) AS slab_percent,
		        COALESCE(SUM(invoice_lines.gross_amount), 0) AS gross_amount,
		        COALESCE(SUM(invoice_lines.cgst_amount), 0) AS cgst_amount,
		        COALESCE(SUM(invoice_lines.sgst_amount), 0) AS sgst_amount,
		        COALESCE(SUM(invoice_lines.total), 0) AS total
		 FROM invoice_lines
		 JOIN invoices ON invoices.id = invoice_lines.invoice_id
		 WHERE invoices.invoice_date >= ? AND invoices.invoice_date < ?
		   AND invoices.kind = ?
		 GROUP BY slab_percent
		 ORDER BY slab_percent ASC`,
		start,
		end,
		invoicedomain.InvoiceKindSale,
	).Scan(&slabs).Error
	if err != nil {
		return nil, err
	}
	return slabs, nil
}

func (s *Service) RollupDay(ctx context.Context, day time.Time) (reportdomain.DailySalesSummary, error) {
	report, err := s.Summarize(ctx, day)
	if err != nil {
		return reportdomain.DailySalesSummary{}, err
	}
	summary := report.Summary

	now := s.clk.Now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing reportdomain.DailySalesSummary
		result := tx.Where("day = ?", summary.Day).Limit(1).Find(&existing)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			summary.ID = existing.ID
			summary.CreatedAt = existing.CreatedAt
			summary.UpdatedAt = now
			return tx.Save(&summary).Error
		}
		summary.ID = s.genID.Generate()
		summary.CreatedAt = now
		summary.UpdatedAt = now
		if err := tx.Create(&summary).Error; err != nil {
			return err
		}
		return s.outbox.PublishTx(ctx, tx, events.Event{
			Type:      events.EventDailySummaryRolledUp,
			DedupeKey: events.EventDailySummaryRolledUp + ":" + summary.Day,
			Payload: map[string]any{
				"day":       summary.Day,
				"net_total": summary.NetTotal,
			},
		})
	})
	if err != nil {
		return reportdomain.DailySalesSummary{}, err
	}

	s.log.Info("daily summary rolled up",
		zap.String("day", summary.Day),
		zap.Int("invoices", summary.InvoiceCount),
		zap.Int64("net_total", summary.NetTotal),
	)
	return summary, nil
}

func (s *Service) ListRange(ctx context.Context, req reportdomain.RangeRequest) ([]reportdomain.DailySalesSummary, error) {
	if req.From.IsZero() || req.To.IsZero() || req.To.Before(req.From) {
		return nil, reportdomain.ErrInvalidRange
	}

	var summaries []reportdomain.DailySalesSummary
	err := s.db.WithContext(ctx).
		Where("day >= ? AND day <= ?", req.From.UTC().Format(dayLayout), req.To.UTC().Format(dayLayout)).
		Order("day ASC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
