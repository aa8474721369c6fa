package accountlogs

import (
	"context"
	"database/sql"
	"fmt"
)

// Exists is the idempotency probe. It runs inside the caller's tx so it sees
// the same snapshot as the locked account row.
func (r *accountLogsRepo) Exists(
	ctx context.Context, tx *sql.Tx, accountID int64, actionTypeID int32, orderNumber string,
) (bool, error) {
	var exists bool

	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1
			FROM account_log
			WHERE account_id = $1
			  AND action_type_id = $2
			  AND order_number = $3
		)
	`, accountID, actionTypeID, orderNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check log exists: %w", err)
	}

	return exists, nil
}
