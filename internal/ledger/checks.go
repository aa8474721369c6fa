package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CheckBefore rejects a debit of magnitude against a field that currently
// holds less than magnitude. Only available and frozen balances are guarded.
func CheckBefore(at ActionType, current Balances, magnitude decimal.Decimal) error {
	m := NormalizeAmount(magnitude)

	if at.AvailableBalance == ChangeDec && current.AvailableBalance.LessThan(m) {
		return fmt.Errorf("available balance %s below %s: %w",
			current.AvailableBalance.StringFixed(Scale), m.StringFixed(Scale), ErrInsufficientFunds)
	}

	if at.FrozenBalance == ChangeDec && current.FrozenBalance.LessThan(m) {
		return fmt.Errorf("frozen balance %s below %s: %w",
			current.FrozenBalance.StringFixed(Scale), m.StringFixed(Scale), ErrInsufficientFunds)
	}

	return nil
}

// CheckAfter rejects a debit that left a guarded field negative.
// Credits are never checked here: a balance already negative from an
// out-of-band write must still accept credits.
func CheckAfter(at ActionType, after Balances) error {
	if at.AvailableBalance == ChangeDec && after.AvailableBalance.IsNegative() {
		return fmt.Errorf("available balance negative after debit: %w", ErrInsufficientFunds)
	}

	if at.FrozenBalance == ChangeDec && after.FrozenBalance.IsNegative() {
		return fmt.Errorf("frozen balance negative after debit: %w", ErrInsufficientFunds)
	}

	return nil
}
