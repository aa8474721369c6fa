// Package ledger holds the account ledger domain: reference types, accounts,
// audit entries and the pure rules that turn an action into balance deltas.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetType struct {
	ID          int32
	Name        string
	Description string
	IsActive    bool
}

// ActionType declares, per balance field, how an action moves it.
type ActionType struct {
	ID               int32
	Name             string
	Description      string
	IsActive         bool
	AvailableBalance Change
	FrozenBalance    Change
	TotalIncome      Change
	TotalExpense     Change
}

// Deltas maps magnitude through the four rules.
func (a ActionType) Deltas(magnitude decimal.Decimal) Deltas {
	return Deltas{
		AvailableBalance: a.AvailableBalance.Apply(magnitude),
		FrozenBalance:    a.FrozenBalance.Apply(magnitude),
		TotalIncome:      a.TotalIncome.Apply(magnitude),
		TotalExpense:     a.TotalExpense.Apply(magnitude),
	}
}

// Deltas are the signed amounts added to an account's four balances.
type Deltas struct {
	AvailableBalance decimal.Decimal
	FrozenBalance    decimal.Decimal
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
}

// Balances is a snapshot of an account's four balance fields.
type Balances struct {
	AvailableBalance decimal.Decimal
	FrozenBalance    decimal.Decimal
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
}

type Account struct {
	ID          int64
	UserID      int64
	AssetTypeID int32
	Balances
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountLog is one applied mutation: the deltas and the balances right after.
type AccountLog struct {
	ID           int64
	AccountID    int64
	ActionTypeID int32
	Amount       Deltas
	After        Balances
	OrderNumber  string
	Description  string
	CreatedAt    time.Time
}
