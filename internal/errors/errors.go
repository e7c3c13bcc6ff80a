package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	AccountNotFound      ErrorCode = "account_not_found"
	DuplicateAccount     ErrorCode = "duplicate_account"
	DuplicateTransaction ErrorCode = "duplicate_transaction"
	InvalidAccountNumber ErrorCode = "invalid_account_number"
	InvalidAmount        ErrorCode = "invalid_amount"
	InsufficientFunds    ErrorCode = "insufficient_funds"
	InvalidInput         ErrorCode = "invalid_input"
	InternalError        ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetails returns a copy so the predefined errors below are never mutated.
func (e *AppError) WithDetails(details string) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// Is matches on code, so errors.Is(err, ErrAccountNotFound) holds for any
// account_not_found error regardless of message or details.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case AccountNotFound:
		return http.StatusNotFound
	case DuplicateAccount, DuplicateTransaction:
		return http.StatusConflict
	case InvalidAccountNumber, InvalidAmount, InvalidInput:
		return http.StatusBadRequest
	case InsufficientFunds:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors for common cases
var (
	ErrAccountNotFound        = NewAppError(AccountNotFound, "account not found")
	ErrDuplicateAccount       = NewAppError(DuplicateAccount, "account already exists")
	ErrDuplicateTransaction   = NewAppError(DuplicateTransaction, "transaction already processed")
	ErrInvalidAccountNumber   = NewAppError(InvalidAccountNumber, "account number must not be blank")
	ErrInvalidDepositAmount   = NewAppError(InvalidAmount, "Invalid deposit amount!")
	ErrInvalidAmount          = NewAppError(InvalidAmount, "amount must be positive")
	ErrInsufficientFunds      = NewAppError(InsufficientFunds, "Insufficient funds!")
	ErrCannotBeginTransaction = NewAppError(InternalError, "cannot begin transaction on a transactional store")
)
