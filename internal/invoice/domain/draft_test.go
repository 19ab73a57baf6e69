package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func line(code, batch string, qty int, rate string) DraftLine {
	r, _ := decimal.NewFromString(rate)
	return DraftLine{ItemCode: code, Batch: batch, Quantity: qty, Rate: r}
}

func TestPendingQuantitiesSkipsBlankAndZeroRows(t *testing.T) {
	pending := PendingQuantities([]DraftLine{
		line("A", "1", 5, "10"),
		line("A", "1", 0, "10"),
		line("", "", 3, "10"),
		line("B", "2", 2, "20"),
	})

	if len(pending) != 2 {
		t.Fatalf("expected 2 keys, got %d: %v", len(pending), pending)
	}
	if got := pending[BatchKey{ItemCode: "A", Batch: "1"}]; got != 5 {
		t.Fatalf("pending A/1 = %d, want 5", got)
	}
	if got := pending[BatchKey{ItemCode: "B", Batch: "2"}]; got != 2 {
		t.Fatalf("pending B/2 = %d, want 2", got)
	}
}

func TestPendingQuantitiesSkipsBatchlessRows(t *testing.T) {
	pending := PendingQuantities([]DraftLine{
		line("A", "", 4, "10"),
		line("A", "1", 2, "10"),
	})

	if len(pending) != 1 {
		t.Fatalf("expected 1 key, got %d: %v", len(pending), pending)
	}
	if got := pending[BatchKey{ItemCode: "A", Batch: ""}]; got != 0 {
		t.Fatalf("batchless row tracked: %d", got)
	}
	if got := pending[BatchKey{ItemCode: "A", Batch: "1"}]; got != 2 {
		t.Fatalf("pending A/1 = %d, want 2", got)
	}
}

func TestPendingQuantitiesSumsAcrossRows(t *testing.T) {
	pending := PendingQuantities([]DraftLine{
		line("A", "1", 2, "10"),
		line("A", "1", 3, "12"),
	})
	if got := pending[BatchKey{ItemCode: "A", Batch: "1"}]; got != 5 {
		t.Fatalf("pending A/1 = %d, want 5", got)
	}
}

func TestAvailableStockClampsAtZero(t *testing.T) {
	key := BatchKey{ItemCode: "A", Batch: "1"}
	pending := map[BatchKey]int{key: 5}

	if got := AvailableStock(3, pending, key); got != 0 {
		t.Fatalf("available = %d, want 0", got)
	}
	if got := AvailableStock(8, pending, key); got != 3 {
		t.Fatalf("available = %d, want 3", got)
	}
	if got := AvailableStock(8, pending, BatchKey{ItemCode: "B", Batch: "2"}); got != 8 {
		t.Fatalf("available with no pending = %d, want 8", got)
	}
}

func TestMergeOrAppendLineMergesOnExactRate(t *testing.T) {
	draft := []DraftLine{line("A", "1", 2, "10")}
	draft = MergeOrAppendLine(draft, line("A", "1", 3, "10"))

	if len(draft) != 1 {
		t.Fatalf("expected 1 line, got %d", len(draft))
	}
	if draft[0].Quantity != 5 {
		t.Fatalf("merged quantity = %d, want 5", draft[0].Quantity)
	}
}

func TestMergeOrAppendLineKeepsRateVariantsDistinct(t *testing.T) {
	draft := []DraftLine{line("A", "1", 2, "10")}
	draft = MergeOrAppendLine(draft, line("A", "1", 3, "12"))

	if len(draft) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(draft))
	}
	if draft[0].Quantity != 2 || draft[1].Quantity != 3 {
		t.Fatalf("quantities = %d, %d; want 2, 3", draft[0].Quantity, draft[1].Quantity)
	}
}

func TestMergeOrAppendLineReplacesPlaceholder(t *testing.T) {
	draft := []DraftLine{line("", "", 0, "0")}
	draft = MergeOrAppendLine(draft, line("A", "1", 1, "10"))

	if len(draft) != 1 {
		t.Fatalf("expected placeholder replacement, got %d lines", len(draft))
	}
	if draft[0].ItemCode != "A" {
		t.Fatalf("item code = %q, want A", draft[0].ItemCode)
	}
}
