package mango

import (
	"errors"
	"fmt"
)

// Stable error codes surfaced to presentation layers.
const (
	ErrCodeDuplicateProduct  = "DUPLICATE_PRODUCT"
	ErrCodeDuplicateContact  = "DUPLICATE_CONTACT"
	ErrCodeUnknownProduct    = "UNKNOWN_PRODUCT"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInvalidUnitWeight = "INVALID_UNIT_WEIGHT"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodePersistence       = "PERSISTENCE_FAILURE"
)

// DomainError is a validation failure with a stable code. All validation
// errors are raised before any mutation; a caller receiving one can assume
// the store is untouched.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// InsufficientStockError rejects an OUT movement that exceeds the pool.
// It carries the required and available amounts for display.
type InsufficientStockError struct {
	Product   string
	Required  Weight
	Available Weight
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock of %s: need %s, have %s",
		e.Product, e.Required.Display(), e.Available.Display())
}

// ErrPersistence marks durability warnings. An error wrapping it means the
// in-memory commit succeeded but the snapshot write failed; the caller
// should surface the warning and keep going, not retry the movement.
var ErrPersistence = errors.New("snapshot write failed")

// ErrNoHistory is the reconciliation engine's "no data" state. It is a
// value, not a failure: an empty flow graph is a valid answer for a product
// that has never moved. Callers test it with errors.Is.
var ErrNoHistory = errors.New("no recorded movements")

// IsValidation reports whether err is a pre-mutation validation failure
// (as opposed to a durability warning or an IO error).
func IsValidation(err error) bool {
	var de *DomainError
	var ise *InsufficientStockError
	return errors.As(err, &de) || errors.As(err, &ise)
}
