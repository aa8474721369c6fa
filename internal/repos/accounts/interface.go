package accounts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/assetledger/internal/ledger"
)

var (
	ErrAccountNotFound = fmt.Errorf("account: %w", ledger.ErrNotFound)
	ErrAccountExists   = fmt.Errorf("account already exists: %w", ledger.ErrConflict)
	ErrBalanceOverflow = fmt.Errorf("balance out of range: %w", ledger.ErrValidation)
)

// Accounts stores one row per (user, asset type). Methods taking a *sql.Tx
// must run inside the transaction that owns the row lock.
type Accounts interface {
	Exists(ctx context.Context, userID int64, assetTypeID int32) (bool, error)
	Create(ctx context.Context, userID int64, assetTypeID int32) (ledger.Account, error)
	Find(ctx context.Context, userID int64, assetTypeID int32) (ledger.Account, error)
	FindMany(ctx context.Context, userID int64, assetTypeIDs []int32) ([]ledger.Account, error)
	FindForUpdate(ctx context.Context, tx *sql.Tx, userID int64, assetTypeID int32) (ledger.Account, error)
	ApplyDelta(ctx context.Context, tx *sql.Tx, userID int64, assetTypeID int32, d ledger.Deltas) (ledger.Account, error)
}
