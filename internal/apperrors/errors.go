package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the resource changed concurrently and the caller may retry.
var ErrConflict = errors.New("conflicting update")

// ErrInternal marks failures that are not caused by the caller.
var ErrInternal = errors.New("internal error")

// Ledger errors. Each wraps one of the classes above so handlers can map them with errors.Is.
var (
	ErrInvalidAmount          = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	ErrNegativeBalance        = fmt.Errorf("%w: balance cannot be negative", ErrValidation)
	ErrInsufficientFunds      = fmt.Errorf("%w: insufficient funds", ErrValidation)
	ErrAccountNotActive       = fmt.Errorf("%w: account is not active", ErrValidation)
	ErrSameAccount            = fmt.Errorf("%w: cannot transfer to the same account", ErrValidation)
	ErrAccountNotCancellable  = fmt.Errorf("%w: account balance must be zero to cancel", ErrValidation)
	ErrAccountNotDeletable    = fmt.Errorf("%w: only cancelled accounts with zero balance can be deleted", ErrValidation)
	ErrInvalidStatusChange    = fmt.Errorf("%w: invalid account status transition", ErrValidation)
	ErrInvalidAccountType     = fmt.Errorf("%w: unknown account type", ErrValidation)
	ErrAccountNotFound        = fmt.Errorf("%w: account not found", ErrNotFound)
	ErrClientNotFound         = fmt.Errorf("%w: client not found", ErrNotFound)
	ErrTransactionNotFound    = fmt.Errorf("%w: transaction not found", ErrNotFound)
	ErrAccountNumberIntegrity = fmt.Errorf("%w: stored account number is malformed", ErrInternal)
)

// AppError carries a status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode classifies err into the HTTP status the API layer should answer with.
// Validation failures are 4xx; integrity and storage failures are 5xx.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInternal):
		return http.StatusInternalServerError
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}
