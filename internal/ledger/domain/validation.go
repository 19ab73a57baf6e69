package domain

// ValidateBalanced ensures posting lines form a balanced double entry.
func ValidateBalanced(lines []LedgerEntryLine) error {
	if len(lines) < 2 {
		return ErrInvalidEntryLines
	}

	var debitTotal, creditTotal int64
	for _, line := range lines {
		if line.Amount < 0 {
			return ErrInvalidLineAmount
		}
		if line.AccountCode == "" {
			return ErrInvalidAccount
		}
		switch line.Direction {
		case LedgerEntryDirectionDebit:
			debitTotal += line.Amount
		case LedgerEntryDirectionCredit:
			creditTotal += line.Amount
		default:
			return ErrInvalidLineDirection
		}
	}

	if debitTotal != creditTotal {
		return ErrUnbalancedEntry
	}
	return nil
}
