package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrBusinessRule indicates that a request was well-formed but a business rule rejected it.
var ErrBusinessRule = errors.New("business rule violation")

// ErrInvariantViolation indicates a caller bug: the request asked for something the
// engine can never produce, such as a position outside 1..N+1 or an unknown route.
var ErrInvariantViolation = errors.New("invariant violation")

// ErrTerminalState indicates an operation against a credit that no longer accepts changes.
var ErrTerminalState = errors.New("credit is in a terminal state")

// ErrConflict indicates the stored record changed between read and write.
var ErrConflict = errors.New("concurrent modification")

// ErrInternal indicates an unexpected failure in a lower layer.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// BalanceBlockedError is returned when a client cannot be deactivated because
// its active credit still has an outstanding balance.
type BalanceBlockedError struct {
	ClientID string
	CreditID string
	Balance  decimal.Decimal
}

func (e *BalanceBlockedError) Error() string {
	return fmt.Sprintf("client %s cannot be deactivated: credit %s has an outstanding balance of %s",
		e.ClientID, e.CreditID, e.Balance.String())
}

// Is lets errors.Is(err, ErrBusinessRule) match a BalanceBlockedError.
func (e *BalanceBlockedError) Is(target error) bool {
	return target == ErrBusinessRule
}
