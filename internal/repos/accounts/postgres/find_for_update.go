package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/repos/accounts"
)

// FindForUpdate reads the account and takes its row lock until tx ends.
func (r *accountsRepo) FindForUpdate(ctx context.Context, tx *sql.Tx, userID int64, assetTypeID int32) (ledger.Account, error) {
	acc, err := scanAccount(tx.QueryRowContext(ctx, `
		SELECT`+accountColumns+`
		FROM account
		WHERE user_id = $1
		  AND asset_type_id = $2
		FOR UPDATE
	`, userID, assetTypeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.Account{}, accounts.ErrAccountNotFound
		}

		return ledger.Account{}, fmt.Errorf("lock/get account: %w", err)
	}

	return acc, nil
}
