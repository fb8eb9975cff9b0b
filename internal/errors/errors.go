package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	TypeError        ErrorCode = "type_error"
	InvalidArgument  ErrorCode = "invalid_argument"
	PermissionDenied ErrorCode = "permission_denied"
	NotFound         ErrorCode = "not_found"
	InternalError    ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is lets errors.Is match the predefined sentinels below by code and message,
// even when details were attached afterwards.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
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

func (e *AppError) WithDetails(details string) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// HTTPStatus maps an error code to the status the handler layer responds with.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case TypeError, InvalidArgument:
		return http.StatusBadRequest
	case PermissionDenied:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors for common cases
var (
	ErrAmountNotNumeric      = NewAppError(TypeError, "amount must be a number")
	ErrNonPositiveAmount     = NewAppError(InvalidArgument, "amount must be positive")
	ErrUnsupportedCurrency   = NewAppError(InvalidArgument, "unsupported currency")
	ErrInsufficientFunds     = NewAppError(InvalidArgument, "insufficient funds")
	ErrDepositTooLarge       = NewAppError(InvalidArgument, "deposit exceeds the per-deposit ceiling")
	ErrAccountBlocked        = NewAppError(PermissionDenied, "account is blocked")
	ErrAccountNotFound       = NewAppError(NotFound, "account not found")
	ErrDuplicateAccount      = NewAppError(InvalidArgument, "account already exists")
	ErrInvalidTransferTarget = NewAppError(TypeError, "transfer target must be a valid account")
)
