package domain

import (
	"errors"
	"testing"
)

func TestValidateBalancedAccepts(t *testing.T) {
	err := ValidateBalanced([]LedgerEntryLine{
		{AccountCode: AccountCodeCashClearing, Direction: LedgerEntryDirectionDebit, Amount: 148500},
		{AccountCode: AccountCodeRevenue, Direction: LedgerEntryDirectionCredit, Amount: 132589},
		{AccountCode: AccountCodeTaxPayable, Direction: LedgerEntryDirectionCredit, Amount: 15911},
	})
	if err != nil {
		t.Fatalf("expected balanced entry, got %v", err)
	}
}

func TestValidateBalancedRejectsUnbalanced(t *testing.T) {
	err := ValidateBalanced([]LedgerEntryLine{
		{AccountCode: AccountCodeCashClearing, Direction: LedgerEntryDirectionDebit, Amount: 100},
		{AccountCode: AccountCodeRevenue, Direction: LedgerEntryDirectionCredit, Amount: 99},
	})
	if !errors.Is(err, ErrUnbalancedEntry) {
		t.Fatalf("expected ErrUnbalancedEntry, got %v", err)
	}
}

func TestValidateBalancedRejectsSingleLine(t *testing.T) {
	err := ValidateBalanced([]LedgerEntryLine{
		{AccountCode: AccountCodeCashClearing, Direction: LedgerEntryDirectionDebit, Amount: 100},
	})
	if !errors.Is(err, ErrInvalidEntryLines) {
		t.Fatalf("expected ErrInvalidEntryLines, got %v", err)
	}
}

func TestValidateBalancedRejectsNegativeAmount(t *testing.T) {
	err := ValidateBalanced([]LedgerEntryLine{
		{AccountCode: AccountCodeCashClearing, Direction: LedgerEntryDirectionDebit, Amount: -1},
		{AccountCode: AccountCodeRevenue, Direction: LedgerEntryDirectionCredit, Amount: -1},
	})
	if !errors.Is(err, ErrInvalidLineAmount) {
		t.Fatalf("expected ErrInvalidLineAmount, got %v", err)
	}
}

func TestValidateBalancedRejectsUnknownDirection(t *testing.T) {
	err := ValidateBalanced([]LedgerEntryLine{
		{AccountCode: AccountCodeCashClearing, Direction: "sideways", Amount: 100},
		{AccountCode: AccountCodeRevenue, Direction: LedgerEntryDirectionCredit, Amount: 100},
	})
	if !errors.Is(err, ErrInvalidLineDirection) {
		t.Fatalf("expected ErrInvalidLineDirection, got %v", err)
	}
}
