package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business rule violation
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeAlreadyExists       = "ALREADY_EXISTS"
	ErrCodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	ErrCodeOutOfRange          = "OUT_OF_RANGE"
	ErrCodeInvalidToken        = "INVALID_TOKEN"
	ErrCodeValidation          = "VALIDATION_ERROR"
)

func NewGiftCardNotFoundError(code string) *DomainError {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("gift card %q not found", code),
	}
}

func NewDuplicateGiftCardError(code string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAlreadyExists,
		Message: fmt.Sprintf("gift card %q already exists", code),
	}
}

func NewInsufficientBalanceError(code string, balanceCents, amountCents int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInsufficientBalance,
		Message: fmt.Sprintf("gift card %q has balance %d, cannot debit %d", code, balanceCents, amountCents),
	}
}

func NewIndexOutOfRangeError(index, length int) *DomainError {
	return &DomainError{
		Code:    ErrCodeOutOfRange,
		Message: fmt.Sprintf("index %d out of range for catalog of %d items", index, length),
	}
}

func NewDuplicateCardError(identifier string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAlreadyExists,
		Message: fmt.Sprintf("custom card %q already registered", identifier),
	}
}

func NewDuplicateCardTokenError() *DomainError {
	return &DomainError{
		Code:    ErrCodeAlreadyExists,
		Message: "card token already registered",
	}
}

func NewInvalidTokenError() *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidToken,
		Message: "no card matches the presented token",
	}
}

func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// IsErrorCode reports whether err is a DomainError carrying the given code.
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}
