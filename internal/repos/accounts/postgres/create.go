package accounts

import (
	"context"
	"fmt"

	"github.com/fastprodman/assetledger/internal/infra/pgutils"
	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/repos/accounts"
)

const userAssetConstraint = "account_user_asset_key"

// Create inserts a zero-balance active account. A concurrent create of the
// same key loses on the unique constraint and gets ErrAccountExists.
func (r *accountsRepo) Create(ctx context.Context, userID int64, assetTypeID int32) (ledger.Account, error) {
	exists, err := r.Exists(ctx, userID, assetTypeID)
	if err != nil {
		return ledger.Account{}, err
	}

	if exists {
		return ledger.Account{}, accounts.ErrAccountExists
	}

	acc, err := scanAccount(r.db.QueryRowContext(ctx, `
		INSERT INTO account (user_id, asset_type_id, is_active)
		VALUES ($1, $2, TRUE)
		RETURNING`+accountColumns,
		userID, assetTypeID))
	if err != nil {
		if pgutils.IsUniqueViolation(err, userAssetConstraint) {
			return ledger.Account{}, accounts.ErrAccountExists
		}

		return ledger.Account{}, fmt.Errorf("insert account: %w", err)
	}

	return acc, nil
}
