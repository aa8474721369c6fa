package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func bal(avail, frozen string) Balances {
	return Balances{
		AvailableBalance: decimal.RequireFromString(avail),
		FrozenBalance:    decimal.RequireFromString(frozen),
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
	}
}

func TestCheckBefore(t *testing.T) {
	t.Parallel()

	consume := ActionType{AvailableBalance: ChangeDec, FrozenBalance: ChangeNone, TotalIncome: ChangeNone, TotalExpense: ChangeInc}
	settle := ActionType{AvailableBalance: ChangeNone, FrozenBalance: ChangeDec, TotalIncome: ChangeNone, TotalExpense: ChangeInc}
	recharge := ActionType{AvailableBalance: ChangeInc, FrozenBalance: ChangeNone, TotalIncome: ChangeInc, TotalExpense: ChangeNone}

	tests := []struct {
		name      string
		at        ActionType
		current   Balances
		magnitude string
		wantErr   bool
	}{
		{name: "debit_within_available", at: consume, current: bal("100", "0"), magnitude: "40", wantErr: false},
		{name: "debit_exact_available", at: consume, current: bal("100", "0"), magnitude: "100", wantErr: false},
		{name: "debit_over_available", at: consume, current: bal("100", "0"), magnitude: "150", wantErr: true},
		{name: "debit_over_frozen", at: settle, current: bal("100", "5"), magnitude: "6", wantErr: true},
		{name: "negative_magnitude_uses_abs", at: consume, current: bal("10", "0"), magnitude: "-11", wantErr: true},
		{name: "credit_on_negative_balance", at: recharge, current: bal("-50", "0"), magnitude: "1", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckBefore(tt.at, tt.current, decimal.RequireFromString(tt.magnitude))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInsufficientFunds)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCheckAfter(t *testing.T) {
	t.Parallel()

	consume := ActionType{AvailableBalance: ChangeDec, FrozenBalance: ChangeNone, TotalIncome: ChangeNone, TotalExpense: ChangeInc}
	unfreeze := ActionType{AvailableBalance: ChangeInc, FrozenBalance: ChangeDec, TotalIncome: ChangeNone, TotalExpense: ChangeNone}
	recharge := ActionType{AvailableBalance: ChangeInc, FrozenBalance: ChangeNone, TotalIncome: ChangeInc, TotalExpense: ChangeNone}

	require.NoError(t, CheckAfter(consume, bal("0", "0")))
	require.ErrorIs(t, CheckAfter(consume, bal("-0.000001", "0")), ErrInsufficientFunds)
	require.ErrorIs(t, CheckAfter(unfreeze, bal("10", "-1")), ErrInsufficientFunds)

	// a credit leaving the field negative is accepted
	require.NoError(t, CheckAfter(recharge, bal("-40", "0")))
}
