package balance

import (
	"database/sql"
	"fmt"

	"github.com/fastprodman/assetledger/internal/config"
	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/repos/accountlogs"
	pgaccountlogs "github.com/fastprodman/assetledger/internal/repos/accountlogs/postgres"
	"github.com/fastprodman/assetledger/internal/repos/accounts"
	pgaccounts "github.com/fastprodman/assetledger/internal/repos/accounts/postgres"
	"github.com/fastprodman/assetledger/internal/services/refdata"
)

var (
	ErrAccountInactive = fmt.Errorf("account inactive: %w", ledger.ErrForbidden)
	ErrEmptyBatch      = fmt.Errorf("no actions: %w", ledger.ErrValidation)
)

// Field limits mirrored from the schema.
const (
	MinOrderNumberLen = 32
	MaxOrderNumberLen = 128
	MaxDescriptionLen = 255
)

// BalanceService is the only writer of account balances and account logs.
type BalanceService struct {
	db       *sql.DB
	ref      *refdata.Cache
	cfg      config.LedgerConfig
	accounts accounts.Accounts
	logs     accountlogs.AccountLogs
}

func New(dbx *sql.DB, ref *refdata.Cache, cfg config.LedgerConfig) *BalanceService {
	return &BalanceService{
		db:       dbx,
		ref:      ref,
		cfg:      cfg,
		accounts: pgaccounts.New(dbx),
		logs:     pgaccountlogs.New(dbx),
	}
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ledger.ErrValidation)
}

func validateUserID(userID int64) error {
	if userID < 1 {
		return validationf("user_id must be positive")
	}

	return nil
}
