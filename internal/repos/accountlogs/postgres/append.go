package accountlogs

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/assetledger/internal/infra/pgutils"
	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/repos/accountlogs"
)

const orderConstraint = "account_log_order_key"

// Append inserts entry and returns it with its id and created_at filled in.
func (r *accountLogsRepo) Append(ctx context.Context, tx *sql.Tx, entry ledger.AccountLog) (ledger.AccountLog, error) {
	err := tx.QueryRowContext(ctx, `
		INSERT INTO account_log (
			account_id,
			action_type_id,
			amount_available_balance,
			amount_frozen_balance,
			amount_total_income,
			amount_total_expense,
			available_balance_after,
			frozen_balance_after,
			total_income_after,
			total_expense_after,
			order_number,
			description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`,
		entry.AccountID,
		entry.ActionTypeID,
		entry.Amount.AvailableBalance,
		entry.Amount.FrozenBalance,
		entry.Amount.TotalIncome,
		entry.Amount.TotalExpense,
		entry.After.AvailableBalance,
		entry.After.FrozenBalance,
		entry.After.TotalIncome,
		entry.After.TotalExpense,
		entry.OrderNumber,
		entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if pgutils.IsUniqueViolation(err, orderConstraint) {
			return ledger.AccountLog{}, accountlogs.ErrDuplicateOrder
		}

		return ledger.AccountLog{}, fmt.Errorf("insert account log: %w", err)
	}

	return entry, nil
}
