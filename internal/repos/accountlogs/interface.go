package accountlogs

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fastprodman/assetledger/internal/ledger"
)

var ErrDuplicateOrder = fmt.Errorf("order already processed: %w", ledger.ErrConflict)

// Filter selects one page of an account's log, newest first.
// Page is 1-based; Start and End bound created_at inclusively when set.
type Filter struct {
	AccountID    int64
	ActionTypeID *int32
	Start        *time.Time
	End          *time.Time
	Page         int
	PageSize     int
}

// Offset is the number of rows skipped before the page starts.
func (f Filter) Offset() int {
	if f.Page < 1 {
		return 0
	}

	return (f.Page - 1) * f.PageSize
}

// AccountLogs is append-only: there is no update or delete.
type AccountLogs interface {
	Exists(ctx context.Context, tx *sql.Tx, accountID int64, actionTypeID int32, orderNumber string) (bool, error)
	Append(ctx context.Context, tx *sql.Tx, entry ledger.AccountLog) (ledger.AccountLog, error)
	QueryPage(ctx context.Context, f Filter) ([]ledger.AccountLog, error)
}
