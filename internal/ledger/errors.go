package ledger

import "errors"

// Error kinds. Every business error returned by the stores and services wraps
// exactly one of these so callers can classify it with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrForbidden         = errors.New("forbidden")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
