package balance

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/repos/accountlogs"
	"github.com/fastprodman/assetledger/pkg/daybound"
)

// LogQuery selects a page of one account's log. StartDate and EndDate are
// calendar days (YYYY-MM-DD) in the session zone; either may be empty.
type LogQuery struct {
	UserID       int64
	AssetTypeID  int32
	ActionTypeID *int32
	StartDate    string
	EndDate      string
	Page         int
	PageSize     int
}

// QueryLogs returns log entries newest first. An account without entries
// yields an empty page.
func (s *BalanceService) QueryLogs(ctx context.Context, q LogQuery) ([]ledger.AccountLog, error) {
	err := validateUserID(q.UserID)
	if err != nil {
		return nil, err
	}

	if q.Page < 1 {
		return nil, validationf("page must be at least 1")
	}

	if q.PageSize < s.cfg.MinPageSize || q.PageSize > s.cfg.MaxPageSize {
		return nil, validationf("page_size must be between %d and %d", s.cfg.MinPageSize, s.cfg.MaxPageSize)
	}

	// keeps (page-1)*page_size inside int
	if q.PageSize > 0 && q.Page > math.MaxInt/q.PageSize {
		return nil, validationf("page %d is out of range", q.Page)
	}

	ok, err := s.ref.IsActiveAssetType(q.AssetTypeID)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, validationf("asset_type_id %d is not active", q.AssetTypeID)
	}

	if q.ActionTypeID != nil {
		ok, err := s.ref.IsActiveActionType(*q.ActionTypeID)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, validationf("action_type_id %d is not active", *q.ActionTypeID)
		}
	}

	start, end, err := daybound.Range(q.StartDate, q.EndDate, s.cfg.SessionLocation)
	if err != nil {
		if errors.Is(err, daybound.ErrInvertedRange) {
			return nil, validationf("end_date before start_date")
		}

		return nil, validationf("invalid date: %v", err)
	}

	acc, err := s.accounts.Find(ctx, q.UserID, q.AssetTypeID)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	logs, err := s.logs.QueryPage(ctx, accountlogs.Filter{
		AccountID:    acc.ID,
		ActionTypeID: q.ActionTypeID,
		Start:        start,
		End:          end,
		Page:         q.Page,
		PageSize:     q.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}

	return logs, nil
}
