package errors

import (
	"fmt"
)

// ErrNotFound indicates a resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrInvalidStateTransition indicates an invalid order status transition
type ErrInvalidStateTransition struct {
	From interface{}
	To   interface{}
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %v to %v", e.From, e.To)
}

// ErrMissingProduct indicates a line-item addition without a selected product
type ErrMissingProduct struct{}

func (e *ErrMissingProduct) Error() string {
	return "no product selected"
}

// ErrVariantRequired indicates a line-item addition without a variant on a
// product that is sellable only through its variants
type ErrVariantRequired struct {
	ProductID string
}

func (e *ErrVariantRequired) Error() string {
	return fmt.Sprintf("product %s requires a variant", e.ProductID)
}

// ErrInvalidQuantity indicates a non-positive line-item quantity
type ErrInvalidQuantity struct {
	Quantity int
}

func (e *ErrInvalidQuantity) Error() string {
	return fmt.Sprintf("quantity must be a positive integer, got %d", e.Quantity)
}

// ErrInvalidShipping indicates a negative shipping amount
type ErrInvalidShipping struct {
	Amount float64
}

func (e *ErrInvalidShipping) Error() string {
	return fmt.Sprintf("shipping amount cannot be negative, got %.2f", e.Amount)
}

// ErrEmptyOrder indicates an attempt to finalize a draft with no line items
type ErrEmptyOrder struct{}

func (e *ErrEmptyOrder) Error() string {
	return "order must contain at least one item"
}

// ErrDraftSubmitted indicates a mutation on a draft that was already finalized
type ErrDraftSubmitted struct {
	DraftID string
}

func (e *ErrDraftSubmitted) Error() string {
	return fmt.Sprintf("draft %s has already been submitted", e.DraftID)
}

// ErrValidation indicates a user-correctable input error on a create form
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsUserError reports whether err is a user-correctable input error, as
// opposed to a missing resource or an internal failure. Handlers map these
// to 422 responses.
func IsUserError(err error) bool {
	switch err.(type) {
	case *ErrMissingProduct, *ErrVariantRequired, *ErrInvalidQuantity,
		*ErrInvalidShipping, *ErrEmptyOrder, *ErrDraftSubmitted,
		*ErrValidation, *ErrInvalidStateTransition:
		return true
	default:
		return false
	}
}
