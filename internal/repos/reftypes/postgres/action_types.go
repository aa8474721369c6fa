package reftypes

import (
	"context"
	"fmt"

	"github.com/fastprodman/assetledger/internal/ledger"
)

func (r *refTypesRepo) ActiveActionTypes(ctx context.Context) ([]ledger.ActionType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id,
			name,
			description,
			is_active,
			available_balance_change::text,
			frozen_balance_change::text,
			total_income_change::text,
			total_expense_change::text
		FROM action_type
		WHERE is_active = TRUE
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query action types: %w", err)
	}
	defer rows.Close()

	var out []ledger.ActionType

	for rows.Next() {
		var at ledger.ActionType

		err = rows.Scan(
			&at.ID, &at.Name, &at.Description, &at.IsActive,
			&at.AvailableBalance, &at.FrozenBalance, &at.TotalIncome, &at.TotalExpense,
		)
		if err != nil {
			return nil, fmt.Errorf("scan action type: %w", err)
		}

		out = append(out, at)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate action types: %w", err)
	}

	return out, nil
}
