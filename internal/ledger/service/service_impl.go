package service

import (
	"context"
	"strings"
	"time"

	ledgerdomain "github.com/aushadhi/pos/internal/ledger/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) ledgerdomain.Service {
	return &Service{
		log:   p.Log.Named("ledger.service"),
		genID: p.GenID,
	}
}

func (s *Service) PostTx(
	ctx context.Context,
	tx *gorm.DB,
	sourceType string,
	sourceID snowflake.ID,
	occurredAt time.Time,
	lines []ledgerdomain.LedgerEntryLine,
) error {
	if strings.TrimSpace(sourceType) == "" {
		return ledgerdomain.ErrInvalidSourceType
	}
	if sourceID == 0 {
		return ledgerdomain.ErrInvalidSourceID
	}
	if err := ledgerdomain.ValidateBalanced(lines); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, line := range lines {
		if err := s.ensureAccount(ctx, tx, line.AccountCode, now); err != nil {
			return err
		}
	}

	entry := ledgerdomain.LedgerEntry{
		ID:         s.genID.Generate(),
		SourceType: sourceType,
		SourceID:   sourceID,
		OccurredAt: occurredAt,
		CreatedAt:  now,
	}
	if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
		return err
	}

	for i := range lines {
		lines[i].ID = s.genID.Generate()
		lines[i].LedgerEntryID = entry.ID
		lines[i].CreatedAt = now
	}
	return tx.WithContext(ctx).Create(&lines).Error
}

func (s *Service) ensureAccount(ctx context.Context, tx *gorm.DB, code string, now time.Time) error {
	var count int64
	if err := tx.WithContext(ctx).
		Model(&ledgerdomain.LedgerAccount{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&ledgerdomain.LedgerAccount{
		ID:        s.genID.Generate(),
		Code:      code,
		Name:      accountName(code),
		CreatedAt: now,
	}).Error
}

func accountName(code string) string {
	switch code {
	case ledgerdomain.AccountCodeCashClearing:
		return "Cash Clearing"
	case ledgerdomain.AccountCodeRevenue:
		return "Revenue"
	case ledgerdomain.AccountCodeTaxPayable:
		return "Tax Payable"
	case ledgerdomain.AccountCodeDiscountAllowed:
		return "Discount Allowed"
	case ledgerdomain.AccountCodeRoundOff:
		return "Round Off"
	default:
		return code
	}
}
