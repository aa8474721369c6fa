package reftypes

import (
	"context"

	"github.com/fastprodman/assetledger/internal/ledger"
)

// RefTypes reads the active reference rows the ledger is configured with.
type RefTypes interface {
	ActiveAssetTypes(ctx context.Context) ([]ledger.AssetType, error)
	ActiveActionTypes(ctx context.Context) ([]ledger.ActionType, error)
}
