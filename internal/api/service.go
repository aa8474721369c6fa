package api

import (
	"context"

	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/services/balance"
)

var _ Ledger = (*balance.BalanceService)(nil)

// Ledger is what the HTTP layer needs from the balance service.
type Ledger interface {
	CreateAccount(ctx context.Context, userID int64, assetTypeID int32) (ledger.Account, error)
	GetAccount(ctx context.Context, userID int64, assetTypeID int32) (ledger.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]ledger.Account, error)
	ApplyActions(ctx context.Context, actions []balance.Action) error
	QueryLogs(ctx context.Context, q balance.LogQuery) ([]ledger.AccountLog, error)
	AssetTypes() ([]ledger.AssetType, error)
	ActionTypes() ([]ledger.ActionType, error)
}
