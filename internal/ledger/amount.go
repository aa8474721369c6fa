package ledger

import "github.com/shopspring/decimal"

// Scale is the number of fractional digits kept for every stored amount.
const Scale = 6

// NormalizeAmount returns |d| truncated to Scale fractional digits.
func NormalizeAmount(d decimal.Decimal) decimal.Decimal {
	return d.Abs().Truncate(Scale)
}

// HasValidScale reports whether d carries no significant digits beyond Scale.
// Trailing zeros do not count, so "1.5000000" is accepted.
func HasValidScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(Scale))
}

// MaxAmount is the exclusive upper bound of a single amount: the balance
// columns are numeric(36,6), which leaves 30 integer digits.
var MaxAmount = decimal.New(1, 36-Scale)

// WithinMax reports whether |d| fits the balance columns.
func WithinMax(d decimal.Decimal) bool {
	return d.Abs().LessThan(MaxAmount)
}
