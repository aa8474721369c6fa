package api

import (
	"time"

	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/services/balance"
	"github.com/shopspring/decimal"
)

type accountKeyRequest struct {
	UserID      int64 `json:"user_id" validate:"required,gte=1"`
	AssetTypeID int32 `json:"asset_type_id" validate:"required,gte=1"`
}

type userRequest struct {
	UserID int64 `json:"user_id" validate:"required,gte=1"`
}

type actionRequest struct {
	UserID       int64           `json:"user_id" validate:"required,gte=1"`
	AssetTypeID  int32           `json:"asset_type_id" validate:"required,gte=1"`
	ActionTypeID int32           `json:"action_type_id" validate:"required,gte=1"`
	Amount       decimal.Decimal `json:"amount"`
	OrderNumber  string          `json:"order_number" validate:"required,min=32,max=128"`
	Description  string          `json:"description" validate:"required,max=255"`
}

func (r actionRequest) toAction() balance.Action {
	return balance.Action{
		UserID:       r.UserID,
		AssetTypeID:  r.AssetTypeID,
		ActionTypeID: r.ActionTypeID,
		Amount:       r.Amount,
		OrderNumber:  r.OrderNumber,
		Description:  r.Description,
	}
}

type logsRequest struct {
	UserID       int64  `json:"user_id" validate:"required,gte=1"`
	AssetTypeID  int32  `json:"asset_type_id" validate:"required,gte=1"`
	ActionTypeID *int32 `json:"action_type_id" validate:"omitempty,gte=1"`
	StartTime    string `json:"start_time" validate:"omitempty,datetime=2006-01-02"`
	EndTime      string `json:"end_time" validate:"omitempty,datetime=2006-01-02"`
	Page         int    `json:"page" validate:"required,gte=1"`
	PageSize     int    `json:"page_size" validate:"required,gte=1"`
}

func (r logsRequest) toQuery() balance.LogQuery {
	return balance.LogQuery{
		UserID:       r.UserID,
		AssetTypeID:  r.AssetTypeID,
		ActionTypeID: r.ActionTypeID,
		StartDate:    r.StartTime,
		EndDate:      r.EndTime,
		Page:         r.Page,
		PageSize:     r.PageSize,
	}
}

type accountResponse struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"user_id"`
	AssetTypeID      int32  `json:"asset_type_id"`
	AvailableBalance string `json:"available_balance"`
	FrozenBalance    string `json:"frozen_balance"`
	TotalIncome      string `json:"total_income"`
	TotalExpense     string `json:"total_expense"`
	IsActive         bool   `json:"is_active"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type logResponse struct {
	ID                     int64  `json:"id"`
	AccountID              int64  `json:"account_id"`
	ActionTypeID           int32  `json:"action_type_id"`
	AmountAvailableBalance string `json:"amount_available_balance"`
	AmountFrozenBalance    string `json:"amount_frozen_balance"`
	AmountTotalIncome      string `json:"amount_total_income"`
	AmountTotalExpense     string `json:"amount_total_expense"`
	AvailableBalanceAfter  string `json:"available_balance_after"`
	FrozenBalanceAfter     string `json:"frozen_balance_after"`
	TotalIncomeAfter       string `json:"total_income_after"`
	TotalExpenseAfter      string `json:"total_expense_after"`
	OrderNumber            string `json:"order_number"`
	Description            string `json:"description"`
	CreatedAt              string `json:"created_at"`
}

type assetTypeResponse struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type actionTypeResponse struct {
	ID                     int32  `json:"id"`
	Name                   string `json:"name"`
	Description            string `json:"description"`
	AvailableBalanceChange string `json:"available_balance_change"`
	FrozenBalanceChange    string `json:"frozen_balance_change"`
	TotalIncomeChange      string `json:"total_income_change"`
	TotalExpenseChange     string `json:"total_expense_change"`
}

// renderer formats money and timestamps for responses.
type renderer struct{ loc *time.Location }

func (rd renderer) money(d decimal.Decimal) string {
	return d.StringFixed(ledger.Scale)
}

func (rd renderer) ts(t time.Time) string {
	return t.In(rd.loc).Format(time.RFC3339)
}

func (rd renderer) account(a ledger.Account) accountResponse {
	return accountResponse{
		ID:               a.ID,
		UserID:           a.UserID,
		AssetTypeID:      a.AssetTypeID,
		AvailableBalance: rd.money(a.AvailableBalance),
		FrozenBalance:    rd.money(a.FrozenBalance),
		TotalIncome:      rd.money(a.TotalIncome),
		TotalExpense:     rd.money(a.TotalExpense),
		IsActive:         a.IsActive,
		CreatedAt:        rd.ts(a.CreatedAt),
		UpdatedAt:        rd.ts(a.UpdatedAt),
	}
}

func (rd renderer) log(l ledger.AccountLog) logResponse {
	return logResponse{
		ID:                     l.ID,
		AccountID:              l.AccountID,
		ActionTypeID:           l.ActionTypeID,
		AmountAvailableBalance: rd.money(l.Amount.AvailableBalance),
		AmountFrozenBalance:    rd.money(l.Amount.FrozenBalance),
		AmountTotalIncome:      rd.money(l.Amount.TotalIncome),
		AmountTotalExpense:     rd.money(l.Amount.TotalExpense),
		AvailableBalanceAfter:  rd.money(l.After.AvailableBalance),
		FrozenBalanceAfter:     rd.money(l.After.FrozenBalance),
		TotalIncomeAfter:       rd.money(l.After.TotalIncome),
		TotalExpenseAfter:      rd.money(l.After.TotalExpense),
		OrderNumber:            l.OrderNumber,
		Description:            l.Description,
		CreatedAt:              rd.ts(l.CreatedAt),
	}
}

func actionTypeDTO(at ledger.ActionType) actionTypeResponse {
	return actionTypeResponse{
		ID:                     at.ID,
		Name:                   at.Name,
		Description:            at.Description,
		AvailableBalanceChange: string(at.AvailableBalance),
		FrozenBalanceChange:    string(at.FrozenBalance),
		TotalIncomeChange:      string(at.TotalIncome),
		TotalExpenseChange:     string(at.TotalExpense),
	}
}
