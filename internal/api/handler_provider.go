package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/services/balance"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// HandlerProvider wraps a Ledger and exposes HTTP handlers.
type HandlerProvider struct {
	svc      Ledger
	validate *validator.Validate
	render   renderer
}

// NewHandler returns a new Handler provider. Timestamps are rendered in loc.
func NewHandler(svc Ledger, loc *time.Location) *HandlerProvider {
	if loc == nil {
		loc = time.UTC
	}

	return &HandlerProvider{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		render:   renderer{loc: loc},
	}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

var errBadJSON = errors.New("invalid JSON")

// decodeBody reads one JSON value into dst, capping the body size and
// rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty body: %w", errBadJSON)
		}

		return fmt.Errorf("%w: %v", errBadJSON, err)
	}

	return nil
}

// bind decodes and validates a request body, writing the error response
// itself. It reports whether the handler should continue.
func (h *HandlerProvider) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := decodeBody(w, r, dst)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}

	err = h.validate.Struct(dst)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}

	return true
}

// writeServiceError maps an error kind to its status. Unknown errors are
// logged and answered with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int

	switch {
	case errors.Is(err, ledger.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, ledger.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, ledger.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	default:
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	writeError(w, status, err.Error())
}

// --- Handlers ---

// ListAssetTypesHandler handles GET /assets
func (h *HandlerProvider) ListAssetTypesHandler(w http.ResponseWriter, r *http.Request) {
	assets, err := h.svc.AssetTypes()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]assetTypeResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, assetTypeResponse{ID: a.ID, Name: a.Name, Description: a.Description})
	}

	writeJSON(w, http.StatusOK, out)
}

// ListActionTypesHandler handles GET /actions
func (h *HandlerProvider) ListActionTypesHandler(w http.ResponseWriter, r *http.Request) {
	actions, err := h.svc.ActionTypes()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]actionTypeResponse, 0, len(actions))
	for _, a := range actions {
		out = append(out, actionTypeDTO(a))
	}

	writeJSON(w, http.StatusOK, out)
}

// CreateAccountHandler handles POST /accounts/new
func (h *HandlerProvider) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req accountKeyRequest
	if !h.bind(w, r, &req) {
		return
	}

	acc, err := h.svc.CreateAccount(r.Context(), req.UserID, req.AssetTypeID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.render.account(acc))
}

// GetAccountHandler handles POST /accounts/info
func (h *HandlerProvider) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req accountKeyRequest
	if !h.bind(w, r, &req) {
		return
	}

	acc, err := h.svc.GetAccount(r.Context(), req.UserID, req.AssetTypeID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.render.account(acc))
}

// ListAccountsHandler handles POST /accounts/infos
func (h *HandlerProvider) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !h.bind(w, r, &req) {
		return
	}

	accs, err := h.svc.ListAccounts(r.Context(), req.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]accountResponse, 0, len(accs))
	for _, a := range accs {
		out = append(out, h.render.account(a))
	}

	writeJSON(w, http.StatusOK, out)
}

// ApplyActionsHandler handles POST /accounts/actions. The body is a JSON
// array applied as one atomic batch.
func (h *HandlerProvider) ApplyActionsHandler(w http.ResponseWriter, r *http.Request) {
	var reqs []actionRequest

	err := decodeBody(w, r, &reqs)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.validate.Var(reqs, "required,min=1,dive")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	actions := make([]balance.Action, 0, len(reqs))
	for _, req := range reqs {
		actions = append(actions, req.toAction())
	}

	err = h.svc.ApplyActions(r.Context(), actions)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "applied": len(actions)})
}

// QueryLogsHandler handles POST /accounts/logs
func (h *HandlerProvider) QueryLogsHandler(w http.ResponseWriter, r *http.Request) {
	var req logsRequest
	if !h.bind(w, r, &req) {
		return
	}

	logs, err := h.svc.QueryLogs(r.Context(), req.toQuery())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]logResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, h.render.log(l))
	}

	writeJSON(w, http.StatusOK, out)
}
