package entities

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every "entity does not exist" error.
var ErrNotFound = errors.New("not found")

var (
	ErrCartNotFound     = fmt.Errorf("cart %w", ErrNotFound)
	ErrCartItemNotFound = fmt.Errorf("cart item %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)

	ErrInvalidOrder      = errors.New("invalid order data")
	ErrTransactionFailed = errors.New("transaction failed")
)

// ValidationError is a business rule violation tied to a request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsDomainError reports whether err is a not-found or validation failure,
// as opposed to an infrastructure error.
func IsDomainError(err error) bool {
	var ve *ValidationError
	return errors.Is(err, ErrNotFound) || errors.As(err, &ve)
}
