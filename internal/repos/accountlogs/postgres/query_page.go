package accountlogs

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/repos/accountlogs"
)

func (r *accountLogsRepo) QueryPage(ctx context.Context, f accountlogs.Filter) ([]ledger.AccountLog, error) {
	query, args := buildPageQuery(f)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query account logs: %w", err)
	}
	defer rows.Close()

	out := make([]ledger.AccountLog, 0, f.PageSize)

	for rows.Next() {
		var l ledger.AccountLog

		err = rows.Scan(
			&l.ID,
			&l.AccountID,
			&l.ActionTypeID,
			&l.Amount.AvailableBalance,
			&l.Amount.FrozenBalance,
			&l.Amount.TotalIncome,
			&l.Amount.TotalExpense,
			&l.After.AvailableBalance,
			&l.After.FrozenBalance,
			&l.After.TotalIncome,
			&l.After.TotalExpense,
			&l.OrderNumber,
			&l.Description,
			&l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan account log: %w", err)
		}

		out = append(out, l)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate account logs: %w", err)
	}

	return out, nil
}

// buildPageQuery appends only the filters that are set, numbering the
// placeholders as it goes.
func buildPageQuery(f accountlogs.Filter) (string, []any) {
	var sb strings.Builder

	args := []any{f.AccountID}

	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	sb.WriteString(`
		SELECT
			id,
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
			description,
			created_at
		FROM account_log
		WHERE account_id = $1`)

	if f.ActionTypeID != nil {
		sb.WriteString(" AND action_type_id = " + next(*f.ActionTypeID))
	}

	if f.Start != nil {
		sb.WriteString(" AND created_at >= " + next(*f.Start))
	}

	if f.End != nil {
		sb.WriteString(" AND created_at <= " + next(*f.End))
	}

	sb.WriteString(" ORDER BY created_at DESC, id DESC")
	sb.WriteString(" LIMIT " + next(f.PageSize))
	sb.WriteString(" OFFSET " + next(f.Offset()))

	return sb.String(), args
}
