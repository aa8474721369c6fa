package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/repos/accounts"
)

func (r *accountsRepo) Find(ctx context.Context, userID int64, assetTypeID int32) (ledger.Account, error) {
	acc, err := scanAccount(r.db.QueryRowContext(ctx, `
		SELECT`+accountColumns+`
		FROM account
		WHERE user_id = $1
		  AND asset_type_id = $2
	`, userID, assetTypeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.Account{}, accounts.ErrAccountNotFound
		}

		return ledger.Account{}, fmt.Errorf("find account: %w", err)
	}

	return acc, nil
}

// FindMany returns the user's accounts among assetTypeIDs, ordered by asset
// type. Missing combinations are simply absent.
func (r *accountsRepo) FindMany(ctx context.Context, userID int64, assetTypeIDs []int32) ([]ledger.Account, error) {
	if len(assetTypeIDs) == 0 {
		return []ledger.Account{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT`+accountColumns+`
		FROM account
		WHERE user_id = $1
		  AND asset_type_id = ANY($2)
		ORDER BY asset_type_id
	`, userID, assetTypeIDs)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	out := make([]ledger.Account, 0, len(assetTypeIDs))

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}

		out = append(out, acc)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return out, nil
}
