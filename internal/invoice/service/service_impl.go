package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aushadhi/pos/internal/clock"
	"github.com/aushadhi/pos/internal/events"
	invoicedomain "github.com/aushadhi/pos/internal/invoice/domain"
	inventorydomain "github.com/aushadhi/pos/internal/inventory/domain"
	ledgerdomain "github.com/aushadhi/pos/internal/ledger/domain"
	"github.com/aushadhi/pos/internal/pricing"
	"github.com/aushadhi/pos/internal/sequence"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const sequenceReturnNo = "return_no"

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clk   clock.Clock

	inventorySvc inventorydomain.Service
	ledgerSvc    ledgerdomain.Service
	outbox       *events.Outbox
}

type ServiceParam struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	InventorySvc inventorydomain.Service
	LedgerSvc    ledgerdomain.Service
	Outbox       *events.Outbox
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("invoice.service"),
		genID:        p.GenID,
		clk:          p.Clock,
		inventorySvc: p.InventorySvc,
		ledgerSvc:    p.LedgerSvc,
		outbox:       p.Outbox,
	}
}

// Quote recomputes every derived line field, the invoice totals, and the
// remaining availability per batch for the in-progress draft. It mutates
// nothing; callers invoke it after each draft edit.
func (s *Service) Quote(ctx context.Context, req invoicedomain.QuoteRequest) (invoicedomain.QuoteResponse, error) {
	lines := make([]invoicedomain.DraftLine, len(req.Lines))
	copy(lines, req.Lines)

	for i := range lines {
		if lines[i].Blank() {
			continue
		}
		if err := recomputeLine(&lines[i]); err != nil {
			return invoicedomain.QuoteResponse{}, err
		}
	}

	totals := pricing.ComputeInvoiceTotals(pricingLines(lines), req.DiscountPercent)

	pending := invoicedomain.PendingQuantities(lines)
	availability, err := s.availabilityFor(ctx, pending)
	if err != nil {
		return invoicedomain.QuoteResponse{}, err
	}

	return invoicedomain.QuoteResponse{
		Lines:        lines,
		Totals:       totals,
		Availability: availability,
	}, nil
}

// Pick resolves a batch from stock master data, derives its selling
// rate from the MRP, clamps the requested quantity against what the
// draft leaves available, and folds the line into the draft. The
// result is the re-quoted draft.
func (s *Service) Pick(ctx context.Context, req invoicedomain.PickRequest) (invoicedomain.QuoteResponse, error) {
	itemCode := strings.TrimSpace(req.ItemCode)
	if itemCode == "" {
		return invoicedomain.QuoteResponse{}, invoicedomain.ErrInvalidLine
	}
	if req.Quantity <= 0 {
		return invoicedomain.QuoteResponse{}, invoicedomain.ErrInvalidQuantity
	}

	batch, err := s.inventorySvc.FindByCodeBatch(ctx, itemCode, req.Batch)
	if err != nil {
		return invoicedomain.QuoteResponse{}, err
	}
	if batch == nil {
		return invoicedomain.QuoteResponse{}, fmt.Errorf("%w: %s/%s", inventorydomain.ErrBatchNotFound, itemCode, req.Batch)
	}

	lines := make([]invoicedomain.DraftLine, len(req.Lines))
	copy(lines, req.Lines)

	key := invoicedomain.BatchKey{ItemCode: batch.ItemCode, Batch: batch.Batch}
	pending := invoicedomain.PendingQuantities(lines)
	quantity := req.Quantity
	if available := invoicedomain.AvailableStock(batch.StockQuantity, pending, key); quantity > available {
		quantity = available
	}

	if quantity > 0 {
		picked := invoicedomain.DraftLine{
			ItemCode:    batch.ItemCode,
			ItemName:    batch.ItemName,
			Batch:       batch.Batch,
			Expiry:      batch.Expiry,
			Pack:        batch.Pack,
			Quantity:    quantity,
			Rate:        pricing.DeriveRate(batch.MRP, batch.SellingPrice),
			MRP:         batch.MRP,
			CGSTPercent: batch.CGSTRate,
			SGSTPercent: batch.SGSTRate,
		}
		lines = invoicedomain.MergeOrAppendLine(lines, picked)
	}

	return s.Quote(ctx, invoicedomain.QuoteRequest{
		Lines:           lines,
		DiscountPercent: req.DiscountPercent,
	})
}

// Save freezes the draft into a persisted invoice and then decrements
// stock per line. Persistence comes first; a stock failure after the
// commit is collected as a warning, never a rollback.
func (s *Service) Save(ctx context.Context, req invoicedomain.SaveRequest) (invoicedomain.SaveResponse, error) {
	lines, err := validateDraft(req.Lines)
	if err != nil {
		return invoicedomain.SaveResponse{}, err
	}

	paymentMode, err := normalizePaymentMode(req.PaymentMode)
	if err != nil {
		return invoicedomain.SaveResponse{}, err
	}

	for i := range lines {
		if err := recomputeLine(&lines[i]); err != nil {
			return invoicedomain.SaveResponse{}, err
		}
	}
	totals := pricing.ComputeInvoiceTotals(pricingLines(lines), req.DiscountPercent)

	if err := s.checkReservations(ctx, lines); err != nil {
		return invoicedomain.SaveResponse{}, err
	}

	now := s.clk.Now()
	invoiceDate := now
	if req.InvoiceDate != nil && !req.InvoiceDate.IsZero() {
		invoiceDate = req.InvoiceDate.UTC()
	}

	invoice := invoicedomain.Invoice{
		ID:              s.genID.Generate(),
		Kind:            invoicedomain.InvoiceKindSale,
		InvoiceDate:     invoiceDate,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		DoctorName:      strings.TrimSpace(req.DoctorName),
		PaymentMode:     paymentMode,
		DiscountPercent: req.DiscountPercent,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	applyTotals(&invoice, totals)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoiceNo, err := sequence.Next(ctx, tx, sequence.SequenceInvoiceNo)
		if err != nil {
			return err
		}
		invoice.InvoiceNo = invoiceNo
		invoice.Lines = s.freezeLines(invoice.ID, lines, now)

		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		ledgerLines := saleLedgerLines(totals)
		if err := s.ledgerSvc.PostTx(ctx, tx, ledgerdomain.SourceTypeSalesInvoice, invoice.ID, invoiceDate, ledgerLines); err != nil {
			return err
		}

		return s.outbox.PublishTx(ctx, tx, events.Event{
			Type:      events.EventInvoiceSaved,
			DedupeKey: events.EventInvoiceSaved + ":" + invoice.ID.String(),
			Payload: map[string]any{
				"invoice_id":   invoice.ID.String(),
				"invoice_no":   invoice.InvoiceNo,
				"kind":         string(invoice.Kind),
				"final_amount": invoice.FinalAmount,
			},
		})
	})
	if err != nil {
		return invoicedomain.SaveResponse{}, err
	}

	warnings := s.applyStockDeltas(ctx, invoice.ID, lines, -1)

	s.log.Info("invoice saved",
		zap.Int64("invoice_no", invoice.InvoiceNo),
		zap.Int("lines", len(lines)),
		zap.Int64("final_amount", invoice.FinalAmount),
		zap.Int("stock_warnings", len(warnings)),
	)

	return invoicedomain.SaveResponse{Invoice: invoice, Warnings: warnings}, nil
}

// CreateReturn records a sales return against a persisted invoice and
// puts the returned units back into stock.
func (s *Service) CreateReturn(ctx context.Context, req invoicedomain.ReturnRequest) (invoicedomain.SaveResponse, error) {
	originalID, err := invoicedomain.ParseID(req.OriginalInvoiceID)
	if err != nil {
		return invoicedomain.SaveResponse{}, invoicedomain.ErrInvalidInvoiceID
	}

	original, err := s.loadInvoice(ctx, originalID)
	if err != nil {
		return invoicedomain.SaveResponse{}, err
	}
	if original.Kind != invoicedomain.InvoiceKindSale {
		return invoicedomain.SaveResponse{}, invoicedomain.ErrNotReturnable
	}

	lines, err := validateDraft(req.Lines)
	if err != nil {
		return invoicedomain.SaveResponse{}, err
	}
	if err := s.checkReturnable(ctx, original, lines); err != nil {
		return invoicedomain.SaveResponse{}, err
	}

	for i := range lines {
		if err := recomputeLine(&lines[i]); err != nil {
			return invoicedomain.SaveResponse{}, err
		}
	}
	totals := pricing.ComputeInvoiceTotals(pricingLines(lines), original.DiscountPercent)

	now := s.clk.Now()
	ret := invoicedomain.Invoice{
		ID:                s.genID.Generate(),
		Kind:              invoicedomain.InvoiceKindReturn,
		OriginalInvoiceID: &originalID,
		InvoiceDate:       now,
		CustomerName:      original.CustomerName,
		CustomerPhone:     original.CustomerPhone,
		PaymentMode:       original.PaymentMode,
		DiscountPercent:   original.DiscountPercent,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	applyTotals(&ret, totals)
	if reason := strings.TrimSpace(req.Reason); reason != "" {
		ret.Metadata = datatypes.JSONMap{"reason": reason}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		returnNo, err := sequence.Next(ctx, tx, sequenceReturnNo)
		if err != nil {
			return err
		}
		ret.InvoiceNo = returnNo
		ret.Lines = s.freezeLines(ret.ID, lines, now)

		if err := tx.Create(&ret).Error; err != nil {
			return err
		}

		ledgerLines := mirrorLedgerLines(saleLedgerLines(totals))
		if err := s.ledgerSvc.PostTx(ctx, tx, ledgerdomain.SourceTypeSalesReturn, ret.ID, now, ledgerLines); err != nil {
			return err
		}

		return s.outbox.PublishTx(ctx, tx, events.Event{
			Type:      events.EventInvoiceReturned,
			DedupeKey: events.EventInvoiceReturned + ":" + ret.ID.String(),
			Payload: map[string]any{
				"invoice_id":          ret.ID.String(),
				"invoice_no":          ret.InvoiceNo,
				"original_invoice_id": originalID.String(),
				"final_amount":        ret.FinalAmount,
			},
		})
	})
	if err != nil {
		return invoicedomain.SaveResponse{}, err
	}

	warnings := s.applyStockDeltas(ctx, ret.ID, lines, 1)

	s.log.Info("return saved",
		zap.Int64("return_no", ret.InvoiceNo),
		zap.String("original_invoice_id", originalID.String()),
		zap.Int("stock_warnings", len(warnings)),
	)

	return invoicedomain.SaveResponse{Invoice: ret, Warnings: warnings}, nil
}

func (s *Service) List(ctx context.Context, req invoicedomain.ListRequest) ([]invoicedomain.Invoice, error) {
	query := s.db.WithContext(ctx).Model(&invoicedomain.Invoice{})
	if kind := strings.TrimSpace(req.Kind); kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if req.DateFrom != nil {
		query = query.Where("invoice_date >= ?", req.DateFrom.UTC())
	}
	if req.DateTo != nil {
		query = query.Where("invoice_date < ?", req.DateTo.UTC().AddDate(0, 0, 1))
	}
	limit := req.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var invoices []invoicedomain.Invoice
	if err := query.Order("invoice_date DESC, invoice_no DESC").Limit(limit).Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*invoicedomain.Invoice, error) {
	parsed, err := invoicedomain.ParseID(id)
	if err != nil {
		return nil, invoicedomain.ErrInvalidInvoiceID
	}
	return s.loadInvoice(ctx, parsed)
}

func (s *Service) loadInvoice(ctx context.Context, id snowflake.ID) (*invoicedomain.Invoice, error) {
	var invoice invoicedomain.Invoice
	err := s.db.WithContext(ctx).
		Preload("Lines").
		Where("id = ?", id).
		First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, invoicedomain.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// checkReservations enforces the save-time invariant: quantity committed
// to the draft must not exceed what the inventory store still holds.
func (s *Service) checkReservations(ctx context.Context, lines []invoicedomain.DraftLine) error {
	pending := invoicedomain.PendingQuantities(lines)
	for key, quantity := range pending {
		batch, err := s.inventorySvc.FindByCodeBatch(ctx, key.ItemCode, key.Batch)
		if err != nil {
			return err
		}
		if batch == nil {
			return fmt.Errorf("%w: %s/%s", inventorydomain.ErrBatchNotFound, key.ItemCode, key.Batch)
		}
		if quantity > batch.StockQuantity {
			return fmt.Errorf("%w: %s/%s has %d, draft holds %d",
				invoicedomain.ErrInsufficientStock, key.ItemCode, key.Batch, batch.StockQuantity, quantity)
		}
	}
	return nil
}

func (s *Service) checkReturnable(ctx context.Context, original *invoicedomain.Invoice, lines []invoicedomain.DraftLine) error {
	sold := make(map[invoicedomain.BatchKey]int)
	for _, line := range original.Lines {
		sold[invoicedomain.BatchKey{ItemCode: line.ItemCode, Batch: line.Batch}] += line.Quantity
	}

	// Quantities already returned against this invoice count against the
	// returnable balance.
	var previous []invoicedomain.InvoiceLine
	err := s.db.WithContext(ctx).
		Joins("JOIN invoices ON invoices.id = invoice_lines.invoice_id").
		Where("invoices.original_invoice_id = ? AND invoices.kind = ?", original.ID, invoicedomain.InvoiceKindReturn).
		Find(&previous).Error
	if err != nil {
		return err
	}
	for _, line := range previous {
		sold[invoicedomain.BatchKey{ItemCode: line.ItemCode, Batch: line.Batch}] -= line.Quantity
	}

	for key, quantity := range invoicedomain.PendingQuantities(lines) {
		if quantity > sold[key] {
			return fmt.Errorf("%w: %s/%s", invoicedomain.ErrReturnExceedsSold, key.ItemCode, key.Batch)
		}
	}
	return nil
}

// applyStockDeltas walks the frozen lines one at a time, awaiting each
// inventory call, and records failures without aborting the remainder.
func (s *Service) applyStockDeltas(ctx context.Context, invoiceID snowflake.ID, lines []invoicedomain.DraftLine, sign int) []invoicedomain.StockWarning {
	var warnings []invoicedomain.StockWarning
	for _, line := range lines {
		var (
			result inventorydomain.MutationResult
			err    error
		)
		if sign < 0 {
			result, err = s.inventorySvc.DecrementStockByCodeBatch(ctx, line.ItemCode, line.Batch, line.Quantity)
		} else {
			result, err = s.inventorySvc.IncrementStockByCodeBatch(ctx, line.ItemCode, line.Batch, line.Quantity)
		}
		if err != nil {
			warnings = append(warnings, invoicedomain.StockWarning{
				ItemCode: line.ItemCode,
				Batch:    line.Batch,
				Reason:   err.Error(),
			})
			s.log.Warn("stock mutation failed after save",
				zap.String("invoice_id", invoiceID.String()),
				zap.String("item_code", line.ItemCode),
				zap.String("batch", line.Batch),
				zap.Error(err),
			)
			if pubErr := s.outbox.Publish(ctx, events.Event{
				Type: events.EventStockDecrementFailed,
				Payload: map[string]any{
					"invoice_id": invoiceID.String(),
					"item_code":  line.ItemCode,
					"batch":      line.Batch,
					"quantity":   line.Quantity,
					"reason":     err.Error(),
				},
			}); pubErr != nil {
				s.log.Warn("outbox publish failed", zap.Error(pubErr))
			}
			continue
		}
		if result.Shortfall > 0 {
			warnings = append(warnings, invoicedomain.StockWarning{
				ItemCode: line.ItemCode,
				Batch:    line.Batch,
				Reason:   fmt.Sprintf("stock clamped at zero, short by %d", result.Shortfall),
			})
		}
	}
	return warnings
}

func (s *Service) availabilityFor(ctx context.Context, pending map[invoicedomain.BatchKey]int) ([]invoicedomain.BatchAvailability, error) {
	keys := make([]invoicedomain.BatchKey, 0, len(pending))
	for key := range pending {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ItemCode != keys[j].ItemCode {
			return keys[i].ItemCode < keys[j].ItemCode
		}
		return keys[i].Batch < keys[j].Batch
	})

	availability := make([]invoicedomain.BatchAvailability, 0, len(keys))
	for _, key := range keys {
		batch, err := s.inventorySvc.FindByCodeBatch(ctx, key.ItemCode, key.Batch)
		if err != nil {
			return nil, err
		}
		stock := 0
		if batch != nil {
			stock = batch.StockQuantity
		}
		availability = append(availability, invoicedomain.BatchAvailability{
			ItemCode:  key.ItemCode,
			Batch:     key.Batch,
			Available: invoicedomain.AvailableStock(stock, pending, key),
		})
	}
	return availability, nil
}

// freezeLines copies draft rows into immutable persisted lines.
func (s *Service) freezeLines(invoiceID snowflake.ID, lines []invoicedomain.DraftLine, now time.Time) []invoicedomain.InvoiceLine {
	frozen := make([]invoicedomain.InvoiceLine, 0, len(lines))
	for _, line := range lines {
		frozen = append(frozen, invoicedomain.InvoiceLine{
			ID:          s.genID.Generate(),
			InvoiceID:   invoiceID,
			ItemCode:    strings.TrimSpace(line.ItemCode),
			ItemName:    strings.TrimSpace(line.ItemName),
			Batch:       strings.TrimSpace(line.Batch),
			Expiry:      strings.TrimSpace(line.Expiry),
			Pack:        strings.TrimSpace(line.Pack),
			Quantity:    line.Quantity,
			Rate:        line.Rate,
			MRP:         line.MRP,
			CGSTPercent: line.CGSTPercent,
			SGSTPercent: line.SGSTPercent,
			GrossAmount: line.GrossAmount,
			CGSTAmount:  line.CGSTAmount,
			SGSTAmount:  line.SGSTAmount,
			Total:       line.Total,
			CreatedAt:   now,
		})
	}
	return frozen
}

func validateDraft(draft []invoicedomain.DraftLine) ([]invoicedomain.DraftLine, error) {
	var lines []invoicedomain.DraftLine
	for _, line := range draft {
		if line.Quantity < 0 {
			return nil, invoicedomain.ErrInvalidQuantity
		}
		if line.Rate.Sign() < 0 {
			return nil, invoicedomain.ErrInvalidRate
		}
		if line.Blank() || line.Quantity == 0 {
			continue
		}
		if line.CGSTPercent < 0 || line.SGSTPercent < 0 {
			return nil, invoicedomain.ErrInvalidLine
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, invoicedomain.ErrEmptyInvoice
	}
	return lines, nil
}

func normalizePaymentMode(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	switch mode {
	case "":
		return invoicedomain.PaymentModeCash, nil
	case invoicedomain.PaymentModeCash, invoicedomain.PaymentModeCard, invoicedomain.PaymentModeUPI, invoicedomain.PaymentModeCredit:
		return mode, nil
	default:
		return "", invoicedomain.ErrInvalidPayment
	}
}

func recomputeLine(line *invoicedomain.DraftLine) error {
	tax, err := pricing.ComputeLineTax(line.Quantity, line.Rate, line.CGSTPercent, line.SGSTPercent)
	if err != nil {
		return invoicedomain.ErrInvalidLine
	}
	line.GrossAmount = tax.GrossAmt
	line.CGSTAmount = tax.CGSTAmt
	line.SGSTAmount = tax.SGSTAmt
	line.Total = tax.Total
	return nil
}

func pricingLines(lines []invoicedomain.DraftLine) []pricing.Line {
	out := make([]pricing.Line, 0, len(lines))
	for _, line := range lines {
		if line.Blank() || line.Quantity <= 0 {
			continue
		}
		out = append(out, pricing.Line{
			Quantity: line.Quantity,
			Rate:     line.Rate,
			MRP:      line.MRP,
			Tax: pricing.LineTax{
				GrossAmt: line.GrossAmount,
				CGSTAmt:  line.CGSTAmount,
				SGSTAmt:  line.SGSTAmount,
				Total:    line.Total,
			},
		})
	}
	return out
}

func applyTotals(invoice *invoicedomain.Invoice, totals pricing.Totals) {
	invoice.GrossAmount = totals.GrossAmt
	invoice.CGSTAmount = totals.CGSTAmt
	invoice.SGSTAmount = totals.SGSTAmt
	invoice.Subtotal = totals.Subtotal
	invoice.DiscountAmount = totals.DiscountAmt
	invoice.RoundOff = totals.RoundOff
	invoice.FinalAmount = totals.FinalAmount
	invoice.SavedFromMRP = totals.SavedFromMRP
}

func toPaise(value decimal.Decimal) int64 {
	return value.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// saleLedgerLines builds a balanced posting for a sale: cash and any
// discount on the debit side, revenue and GST on the credit side, with a
// round_off line absorbing the rounding residue.
func saleLedgerLines(totals pricing.Totals) []ledgerdomain.LedgerEntryLine {
	cash := totals.FinalAmount * 100
	discount := toPaise(totals.DiscountAmt)
	revenue := toPaise(totals.GrossAmt)
	tax := toPaise(totals.CGSTAmt.Add(totals.SGSTAmt))

	lines := []ledgerdomain.LedgerEntryLine{
		{AccountCode: ledgerdomain.AccountCodeCashClearing, Direction: ledgerdomain.LedgerEntryDirectionDebit, Amount: cash},
		{AccountCode: ledgerdomain.AccountCodeRevenue, Direction: ledgerdomain.LedgerEntryDirectionCredit, Amount: revenue},
		{AccountCode: ledgerdomain.AccountCodeTaxPayable, Direction: ledgerdomain.LedgerEntryDirectionCredit, Amount: tax},
	}
	if discount > 0 {
		lines = append(lines, ledgerdomain.LedgerEntryLine{
			AccountCode: ledgerdomain.AccountCodeDiscountAllowed,
			Direction:   ledgerdomain.LedgerEntryDirectionDebit,
			Amount:      discount,
		})
	}

	residue := (revenue + tax) - (cash + discount)
	if residue > 0 {
		lines = append(lines, ledgerdomain.LedgerEntryLine{
			AccountCode: ledgerdomain.AccountCodeRoundOff,
			Direction:   ledgerdomain.LedgerEntryDirectionDebit,
			Amount:      residue,
		})
	} else if residue < 0 {
		lines = append(lines, ledgerdomain.LedgerEntryLine{
			AccountCode: ledgerdomain.AccountCodeRoundOff,
			Direction:   ledgerdomain.LedgerEntryDirectionCredit,
			Amount:      -residue,
		})
	}
	return lines
}

// mirrorLedgerLines flips debit and credit for a sales return.
func mirrorLedgerLines(lines []ledgerdomain.LedgerEntryLine) []ledgerdomain.LedgerEntryLine {
	mirrored := make([]ledgerdomain.LedgerEntryLine, len(lines))
	for i, line := range lines {
		mirrored[i] = line
		if line.Direction == ledgerdomain.LedgerEntryDirectionDebit {
			mirrored[i].Direction = ledgerdomain.LedgerEntryDirectionCredit
		} else {
			mirrored[i].Direction = ledgerdomain.LedgerEntryDirectionDebit
		}
	}
	return mirrored
}
