package reftypes

import (
	"context"
	"fmt"

	"github.com/fastprodman/assetledger/internal/ledger"
)

func (r *refTypesRepo) ActiveAssetTypes(ctx context.Context) ([]ledger.AssetType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, is_active
		FROM asset_type
		WHERE is_active = TRUE
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query asset types: %w", err)
	}
	defer rows.Close()

	var out []ledger.AssetType

	for rows.Next() {
		var at ledger.AssetType

		err = rows.Scan(&at.ID, &at.Name, &at.Description, &at.IsActive)
		if err != nil {
			return nil, fmt.Errorf("scan asset type: %w", err)
		}

		out = append(out, at)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate asset types: %w", err)
	}

	return out, nil
}
