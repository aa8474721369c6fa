package accounts

import (
	"database/sql"

	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/repos/accounts"
)

var _ accounts.Accounts = (*accountsRepo)(nil)

type accountsRepo struct{ db *sql.DB }

func New(db *sql.DB) *accountsRepo {
	return &accountsRepo{db: db}
}

const accountColumns = `
	id,
	user_id,
	asset_type_id,
	available_balance,
	frozen_balance,
	total_income,
	total_expense,
	is_active,
	created_at,
	updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (ledger.Account, error) {
	var a ledger.Account

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.AssetTypeID,
		&a.AvailableBalance,
		&a.FrozenBalance,
		&a.TotalIncome,
		&a.TotalExpense,
		&a.IsActive,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}
