package sequence

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// SequenceInvoiceNo names the invoice-number counter.
const SequenceInvoiceNo = "invoice_no"

var ErrInvalidName = errors.New("invalid_sequence_name")

// Row is a named monotonically increasing counter. Numbers are handed
// out inside the caller's save transaction, never pre-allocated.
type Row struct {
	Name      string    `gorm:"primaryKey;type:text"`
	Value     int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Row) TableName() string { return "sequences" }

// Next increments the named counter and returns the new value. Run it
// inside the transaction that persists the record using the number, so
// a rollback releases nothing that was observed outside it.
func Next(ctx context.Context, tx *gorm.DB, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrInvalidName
	}

	if err := tx.WithContext(ctx).Exec(
		`INSERT INTO sequences (name, value, updated_at) VALUES (?, 0, ?)
		 ON CONFLICT (name) DO NOTHING`,
		name,
		time.Now().UTC(),
	).Error; err != nil {
		return 0, err
	}

	if err := tx.WithContext(ctx).Exec(
		`UPDATE sequences SET value = value + 1, updated_at = ? WHERE name = ?`,
		time.Now().UTC(),
		name,
	).Error; err != nil {
		return 0, err
	}

	var value int64
	if err := tx.WithContext(ctx).Raw(
		`SELECT value FROM sequences WHERE name = ?`,
		name,
	).Scan(&value).Error; err != nil {
		return 0, err
	}
	return value, nil
}
