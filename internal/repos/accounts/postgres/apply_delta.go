package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/assetledger/internal/infra/pgutils"
	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/repos/accounts"
)

// ApplyDelta adds d to the stored balances and returns the updated row.
func (r *accountsRepo) ApplyDelta(
	ctx context.Context, tx *sql.Tx, userID int64, assetTypeID int32, d ledger.Deltas,
) (ledger.Account, error) {
	acc, err := scanAccount(tx.QueryRowContext(ctx, `
		UPDATE account
		SET available_balance = available_balance + $3,
		    frozen_balance    = frozen_balance + $4,
		    total_income      = total_income + $5,
		    total_expense     = total_expense + $6,
		    updated_at        = now()
		WHERE user_id = $1
		  AND asset_type_id = $2
		RETURNING`+accountColumns,
		userID, assetTypeID,
		d.AvailableBalance, d.FrozenBalance, d.TotalIncome, d.TotalExpense,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.Account{}, accounts.ErrAccountNotFound
		}

		if pgutils.IsNumericOverflow(err) {
			return ledger.Account{}, accounts.ErrBalanceOverflow
		}

		return ledger.Account{}, fmt.Errorf("apply delta: %w", err)
	}

	return acc, nil
}
