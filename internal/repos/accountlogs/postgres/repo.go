package accountlogs

import (
	"database/sql"

	"github.com/fastprodman/assetledger/internal/repos/accountlogs"
)

var _ accountlogs.AccountLogs = (*accountLogsRepo)(nil)

type accountLogsRepo struct{ db *sql.DB }

func New(db *sql.DB) *accountLogsRepo {
	return &accountLogsRepo{db: db}
}
