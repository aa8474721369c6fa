package accounts

import (
	"context"
	"fmt"
)

func (r *accountsRepo) Exists(ctx context.Context, userID int64, assetTypeID int32) (bool, error) {
	var exists bool

	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM account WHERE user_id = $1 AND asset_type_id = $2)
	`, userID, assetTypeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check exists: %w", err)
	}

	return exists, nil
}
