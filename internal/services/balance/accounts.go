package balance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/services/refdata"
)

// CreateAccount opens a zero-balance account for an active asset type.
func (s *BalanceService) CreateAccount(ctx context.Context, userID int64, assetTypeID int32) (ledger.Account, error) {
	err := validateUserID(userID)
	if err != nil {
		return ledger.Account{}, err
	}

	ok, err := s.ref.IsActiveAssetType(assetTypeID)
	if err != nil {
		return ledger.Account{}, err
	}

	if !ok {
		return ledger.Account{}, fmt.Errorf("asset type %d: %w", assetTypeID, refdata.ErrUnknownAssetType)
	}

	acc, err := s.accounts.Create(ctx, userID, assetTypeID)
	if err != nil {
		return ledger.Account{}, fmt.Errorf("create account: %w", err)
	}

	slog.InfoContext(ctx, "account created", "account_id", acc.ID, "user_id", userID, "asset_type_id", assetTypeID)

	return acc, nil
}

// GetAccount returns the user's account for one asset type.
func (s *BalanceService) GetAccount(ctx context.Context, userID int64, assetTypeID int32) (ledger.Account, error) {
	err := validateUserID(userID)
	if err != nil {
		return ledger.Account{}, err
	}

	acc, err := s.accounts.Find(ctx, userID, assetTypeID)
	if err != nil {
		return ledger.Account{}, fmt.Errorf("get account: %w", err)
	}

	return acc, nil
}

// ListAccounts returns the user's accounts over every active asset type,
// ordered by asset type id. Asset types without an account are omitted.
func (s *BalanceService) ListAccounts(ctx context.Context, userID int64) ([]ledger.Account, error) {
	err := validateUserID(userID)
	if err != nil {
		return nil, err
	}

	ids, err := s.ref.AssetTypeIDs()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []ledger.Account{}, nil
	}

	accs, err := s.accounts.FindMany(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accs, nil
}

// AssetTypes lists the active asset types.
func (s *BalanceService) AssetTypes() ([]ledger.AssetType, error) {
	return s.ref.AssetTypes()
}

// ActionTypes lists the active action types with their rules.
func (s *BalanceService) ActionTypes() ([]ledger.ActionType, error) {
	return s.ref.ActionTypes()
}
