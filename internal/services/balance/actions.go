package balance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/fastprodman/assetledger/internal/infra/pgutils"
	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/repos/accountlogs"
	"github.com/shopspring/decimal"
)

// Action asks for one rule-driven change of one account.
type Action struct {
	UserID       int64
	AssetTypeID  int32
	ActionTypeID int32
	Amount       decimal.Decimal
	OrderNumber  string
	Description  string
}

// ApplyActions runs the whole batch in a single DB transaction:
//
// 1) Lock the account row (FOR UPDATE).
// 2) Refuse inactive accounts and debits the current balance can't cover.
// 3) Refuse an order number already logged for (account, action type).
// 4) Add the rule deltas, re-check debited fields, append the log row.
//
// Any failure rolls back every action of the batch.
func (s *BalanceService) ApplyActions(ctx context.Context, actions []Action) error {
	err := s.validateActions(actions)
	if err != nil {
		return err
	}

	err = pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for i, a := range actions {
			err := s.applyAction(ctx, tx, a)
			if err != nil {
				return fmt.Errorf("action %d (order %s): %w", i, a.OrderNumber, err)
			}
		}

		return nil
	})
	if err != nil {
		slog.WarnContext(ctx, "account actions rejected", "actions", len(actions), "error", err)

		return fmt.Errorf("apply actions: %w", err)
	}

	slog.InfoContext(ctx, "account actions applied", "actions", len(actions))

	return nil
}

func (s *BalanceService) applyAction(ctx context.Context, tx *sql.Tx, a Action) error {
	acc, err := s.accounts.FindForUpdate(ctx, tx, a.UserID, a.AssetTypeID)
	if err != nil {
		return fmt.Errorf("lock account: %w", err)
	}

	at, err := s.ref.ActionType(a.ActionTypeID)
	if err != nil {
		return fmt.Errorf("resolve action type: %w", err)
	}

	deltas, err := plan(acc, at, a)
	if err != nil {
		return err
	}

	// Same lock scope as the insert below, so no concurrent duplicate can
	// pass this probe for this account.
	dup, err := s.logs.Exists(ctx, tx, acc.ID, at.ID, a.OrderNumber)
	if err != nil {
		return fmt.Errorf("check order: %w", err)
	}

	if dup {
		return accountlogs.ErrDuplicateOrder
	}

	updated, err := s.accounts.ApplyDelta(ctx, tx, a.UserID, a.AssetTypeID, deltas)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	entry, err := settle(updated, at, deltas, a)
	if err != nil {
		return err
	}

	_, err = s.logs.Append(ctx, tx, entry)
	if err != nil {
		return fmt.Errorf("append log: %w", err)
	}

	return nil
}

// plan decides, from the locked row alone, whether the action may proceed
// and what it adds to each balance.
func plan(acc ledger.Account, at ledger.ActionType, a Action) (ledger.Deltas, error) {
	if !acc.IsActive {
		return ledger.Deltas{}, ErrAccountInactive
	}

	err := ledger.CheckBefore(at, acc.Balances, a.Amount)
	if err != nil {
		return ledger.Deltas{}, fmt.Errorf("pre-check: %w", err)
	}

	return at.Deltas(a.Amount), nil
}

// settle checks the post-update row and builds the log entry for it.
func settle(updated ledger.Account, at ledger.ActionType, d ledger.Deltas, a Action) (ledger.AccountLog, error) {
	err := ledger.CheckAfter(at, updated.Balances)
	if err != nil {
		return ledger.AccountLog{}, fmt.Errorf("post-check: %w", err)
	}

	return ledger.AccountLog{
		AccountID:    updated.ID,
		ActionTypeID: at.ID,
		Amount:       d,
		After:        updated.Balances,
		OrderNumber:  a.OrderNumber,
		Description:  a.Description,
	}, nil
}

func (s *BalanceService) validateActions(actions []Action) error {
	if len(actions) == 0 {
		return ErrEmptyBatch
	}

	var errs []error

	for i, a := range actions {
		err := s.validateAction(a)
		if err != nil {
			errs = append(errs, fmt.Errorf("action %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

func (s *BalanceService) validateAction(a Action) error {
	err := validateUserID(a.UserID)
	if err != nil {
		return err
	}

	ok, err := s.ref.IsActiveAssetType(a.AssetTypeID)
	if err != nil {
		return err
	}

	if !ok {
		return validationf("asset_type_id %d is not active", a.AssetTypeID)
	}

	ok, err = s.ref.IsActiveActionType(a.ActionTypeID)
	if err != nil {
		return err
	}

	if !ok {
		return validationf("action_type_id %d is not active", a.ActionTypeID)
	}

	if !a.Amount.IsPositive() {
		return validationf("amount must be greater than zero")
	}

	if !ledger.HasValidScale(a.Amount) {
		return validationf("amount allows at most %d fractional digits", ledger.Scale)
	}

	if !ledger.WithinMax(a.Amount) {
		return validationf("amount must be below %s", ledger.MaxAmount)
	}

	n := utf8.RuneCountInString(a.OrderNumber)
	if n < MinOrderNumberLen || n > MaxOrderNumberLen {
		return validationf("order_number must be %d to %d characters", MinOrderNumberLen, MaxOrderNumberLen)
	}

	n = utf8.RuneCountInString(a.Description)
	if n == 0 || n > MaxDescriptionLen {
		return validationf("description must be 1 to %d characters", MaxDescriptionLen)
	}

	return nil
}
