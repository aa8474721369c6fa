package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/services/balance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedger struct {
	err     error
	account ledger.Account
	logs    []ledger.AccountLog
	applied []balance.Action
	query   balance.LogQuery
}

func (f *fakeLedger) CreateAccount(_ context.Context, userID int64, assetTypeID int32) (ledger.Account, error) {
	a := f.account
	a.UserID, a.AssetTypeID = userID, assetTypeID

	return a, f.err
}

func (f *fakeLedger) GetAccount(ctx context.Context, userID int64, assetTypeID int32) (ledger.Account, error) {
	return f.CreateAccount(ctx, userID, assetTypeID)
}

func (f *fakeLedger) ListAccounts(context.Context, int64) ([]ledger.Account, error) {
	return []ledger.Account{f.account}, f.err
}

func (f *fakeLedger) ApplyActions(_ context.Context, actions []balance.Action) error {
	f.applied = actions
	return f.err
}

func (f *fakeLedger) QueryLogs(_ context.Context, q balance.LogQuery) ([]ledger.AccountLog, error) {
	f.query = q
	return f.logs, f.err
}

func (f *fakeLedger) AssetTypes() ([]ledger.AssetType, error) {
	return []ledger.AssetType{{ID: 1, Name: "points", Description: "loyalty points", IsActive: true}}, f.err
}

func (f *fakeLedger) ActionTypes() ([]ledger.ActionType, error) {
	return []ledger.ActionType{{
		ID: 3, Name: "freeze", IsActive: true,
		AvailableBalance: ledger.ChangeDec, FrozenBalance: ledger.ChangeInc,
		TotalIncome: ledger.ChangeNone, TotalExpense: ledger.ChangeNone,
	}}, f.err
}

var order32 = strings.Repeat("a", 32)

func do(t *testing.T, svc Ledger, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewRouter(svc, loc).ServeHTTP(rec, req)

	return rec
}

func TestCreateAccount_RendersAccount(t *testing.T) {
	t.Parallel()

	svc := &fakeLedger{account: ledger.Account{
		ID:       9,
		IsActive: true,
		Balances: ledger.Balances{
			AvailableBalance: decimal.RequireFromString("1.5"),
			FrozenBalance:    decimal.Zero,
			TotalIncome:      decimal.RequireFromString("1.5"),
			TotalExpense:     decimal.Zero,
		},
		CreatedAt: time.Date(2024, 5, 1, 16, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 5, 1, 16, 30, 0, 0, time.UTC),
	}}

	rec := do(t, svc, http.MethodPost, "/accounts/new", `{"user_id":1,"asset_type_id":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got accountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, int32(2), got.AssetTypeID)
	assert.Equal(t, "1.500000", got.AvailableBalance)
	assert.Equal(t, "0.000000", got.FrozenBalance)
	assert.Equal(t, "2024-05-02T00:30:00+08:00", got.CreatedAt)
}

func TestErrorStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("bad: %w", ledger.ErrValidation), want: http.StatusUnprocessableEntity},
		{name: "not_found", err: fmt.Errorf("x: %w", ledger.ErrNotFound), want: http.StatusNotFound},
		{name: "conflict", err: fmt.Errorf("x: %w", ledger.ErrConflict), want: http.StatusConflict},
		{name: "forbidden", err: fmt.Errorf("x: %w", ledger.ErrForbidden), want: http.StatusForbidden},
		{name: "insufficient", err: fmt.Errorf("x: %w", ledger.ErrInsufficientFunds), want: http.StatusPaymentRequired},
		{name: "unknown", err: errors.New(`pq: relation "account" does not exist`), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := do(t, &fakeLedger{err: tt.err}, http.MethodPost, "/accounts/info", `{"user_id":1,"asset_type_id":1}`)
			assert.Equal(t, tt.want, rec.Code)

			if tt.want == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "relation")
			}
		})
	}
}

func TestBadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{name: "malformed_json", path: "/accounts/info", body: `{"user_id":`, want: http.StatusBadRequest},
		{name: "empty_body", path: "/accounts/info", body: ``, want: http.StatusBadRequest},
		{name: "unknown_field", path: "/accounts/info", body: `{"user_id":1,"asset_type_id":1,"x":1}`, want: http.StatusBadRequest},
		{name: "zero_user", path: "/accounts/info", body: `{"user_id":0,"asset_type_id":1}`, want: http.StatusUnprocessableEntity},
		{name: "missing_asset", path: "/accounts/new", body: `{"user_id":1}`, want: http.StatusUnprocessableEntity},
		{name: "empty_batch", path: "/accounts/actions", body: `[]`, want: http.StatusUnprocessableEntity},
		{name: "short_order", path: "/accounts/actions",
			body: `[{"user_id":1,"asset_type_id":1,"action_type_id":1,"amount":"1","order_number":"abc","description":"d"}]`,
			want: http.StatusUnprocessableEntity},
		{name: "bad_date", path: "/accounts/logs",
			body: `{"user_id":1,"asset_type_id":1,"start_time":"01/02/2024","page":1,"page_size":10}`,
			want: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := do(t, &fakeLedger{}, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestApplyActions_PassesBatch(t *testing.T) {
	t.Parallel()

	svc := &fakeLedger{}
	body := fmt.Sprintf(`[
		{"user_id":1,"asset_type_id":1,"action_type_id":1,"amount":"100.5","order_number":%q,"description":"top up"},
		{"user_id":1,"asset_type_id":1,"action_type_id":2,"amount":3,"order_number":%q,"description":"spend"}
	]`, order32, order32)

	rec := do(t, svc, http.MethodPost, "/accounts/actions", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, svc.applied, 2)
	assert.True(t, svc.applied[0].Amount.Equal(decimal.RequireFromString("100.5")))
	assert.Equal(t, int32(2), svc.applied[1].ActionTypeID)
	assert.Equal(t, "spend", svc.applied[1].Description)
}

func TestQueryLogs_PassesFilter(t *testing.T) {
	t.Parallel()

	svc := &fakeLedger{logs: []ledger.AccountLog{{
		ID:           5,
		ActionTypeID: 1,
		Amount:       ledger.Deltas{AvailableBalance: decimal.RequireFromString("-2")},
		OrderNumber:  order32,
		CreatedAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}}}

	rec := do(t, svc, http.MethodPost, "/accounts/logs",
		`{"user_id":1,"asset_type_id":1,"action_type_id":1,"start_time":"2024-05-01","end_time":"2024-05-02","page":2,"page_size":20}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NotNil(t, svc.query.ActionTypeID)
	assert.Equal(t, int32(1), *svc.query.ActionTypeID)
	assert.Equal(t, "2024-05-01", svc.query.StartDate)
	assert.Equal(t, "2024-05-02", svc.query.EndDate)
	assert.Equal(t, 2, svc.query.Page)
	assert.Equal(t, 20, svc.query.PageSize)

	var got []logResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "-2.000000", got[0].AmountAvailableBalance)
	assert.Equal(t, "2024-05-01T08:00:00+08:00", got[0].CreatedAt)
}

func TestReferenceListings(t *testing.T) {
	t.Parallel()

	rec := do(t, &fakeLedger{}, http.MethodGet, "/actions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var actions []actionTypeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actions))
	require.Len(t, actions, 1)
	assert.Equal(t, "DEC", actions[0].AvailableBalanceChange)
	assert.Equal(t, "INC", actions[0].FrozenBalanceChange)

	rec = do(t, &fakeLedger{}, http.MethodGet, "/assets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"points"`)

	rec = do(t, &fakeLedger{}, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
