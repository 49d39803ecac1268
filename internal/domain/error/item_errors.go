// Package error defines domain-specific errors for the Stockee application.
package error

// Item domain errors.
var (
	// ErrItemNotFound is returned when an item is absent or outside the caller's scopes.
	ErrItemNotFound = newKinded(ErrNotFound, "item not found")

	// ErrItemNameRequired is returned when the item name is empty.
	ErrItemNameRequired = newKinded(ErrInvalidInput, "item name is required")

	// ErrItemUnitRequired is returned when the unit label is empty.
	ErrItemUnitRequired = newKinded(ErrInvalidInput, "unit is required")

	// ErrNegativeQuantity is returned when a quantity below zero is supplied.
	ErrNegativeQuantity = newKinded(ErrInvalidInput, "quantity must not be negative")

	// ErrNegativePrice is returned when a price below zero is supplied.
	ErrNegativePrice = newKinded(ErrInvalidInput, "price must not be negative")

	// ErrNegativeThreshold is returned when a threshold below zero is supplied.
	ErrNegativeThreshold = newKinded(ErrInvalidInput, "threshold must not be negative")

	// ErrCategoryOutsideItemScope is returned when the category belongs to another scope.
	ErrCategoryOutsideItemScope = newKinded(ErrInvalidInput, "category does not belong to the item's scope")

	// ErrOutOfStock is returned when decrementing an item whose quantity is already zero.
	ErrOutOfStock = newKinded(ErrInvariantViolation, "stock cannot be negative")

	// ErrItemAccessDenied is returned when a mutation targets an item that is
	// absent or outside the caller's scopes.
	ErrItemAccessDenied = newKinded(ErrAccessDenied, "item not found or access denied")

	// ErrItemNotInScope is returned when a reorder names an item outside the scope.
	ErrItemNotInScope = newKinded(ErrAccessDenied, "some items do not belong to this scope")
)

// ItemErrorCode defines error codes for item errors.
// Format: ITEM-XXYYYY where XX is category and YYYY is specific error.
type ItemErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeItemNameRequired     ItemErrorCode = "ITEM-010001"
	ErrCodeItemUnitRequired     ItemErrorCode = "ITEM-010002"
	ErrCodeNegativeQuantity     ItemErrorCode = "ITEM-010003"
	ErrCodeNegativePrice        ItemErrorCode = "ITEM-010004"
	ErrCodeNegativeThreshold    ItemErrorCode = "ITEM-010005"
	ErrCodeInvalidItemCategory  ItemErrorCode = "ITEM-010006"
	ErrCodeMissingItemFields    ItemErrorCode = "ITEM-010007"
	ErrCodeInvalidItemSortOrder ItemErrorCode = "ITEM-010008"

	// Lookup errors (02XXXX)
	ErrCodeItemNotFound   ItemErrorCode = "ITEM-020001"
	ErrCodeItemNotInScope ItemErrorCode = "ITEM-020002"
	ErrCodeItemAccess     ItemErrorCode = "ITEM-020003"

	// Stock errors (03XXXX)
	ErrCodeOutOfStock ItemErrorCode = "ITEM-030001"
)

// ItemError represents an item error with code and message.
type ItemError struct {
	Code    ItemErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the stable code as a string.
func (e *ItemError) ErrorCode() string {
	return string(e.Code)
}

// NewItemError creates a new ItemError with the given code and message.
func NewItemError(code ItemErrorCode, message string, err error) *ItemError {
	return &ItemError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
