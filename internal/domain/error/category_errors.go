// Package error defines domain-specific errors for the Stockee application.
package error

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is absent or outside the caller's scopes.
	ErrCategoryNotFound = newKinded(ErrAccessDenied, "category not found")

	// ErrCategoryNameExists is returned when the name is already used in the same scope.
	ErrCategoryNameExists = newKinded(ErrConflict, "category name already exists")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = newKinded(ErrInvalidInput, "category name is required")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = newKinded(ErrInvalidInput, "category name too long")

	// ErrInvalidColorFormat is returned when the category color is not #RRGGBB.
	ErrInvalidColorFormat = newKinded(ErrInvalidInput, "invalid color format")

	// ErrCategoryNotInScope is returned when a reorder names a category outside the scope.
	ErrCategoryNotInScope = newKinded(ErrAccessDenied, "some categories do not belong to this scope")

	// ErrInvalidSortOrder is returned when a reorder entry carries a negative position.
	ErrInvalidSortOrder = newKinded(ErrInvalidInput, "sort order must not be negative")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidColorFormat    CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameRequired  CategoryErrorCode = "CAT-010003"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010008"
	ErrCodeInvalidCategoryOrder  CategoryErrorCode = "CAT-010009"

	// Lookup and conflict errors (02XXXX)
	ErrCodeCategoryNotFound   CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryNameExists CategoryErrorCode = "CAT-020002"
	ErrCodeCategoryNotInScope CategoryErrorCode = "CAT-020003"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the stable code as a string.
func (e *CategoryError) ErrorCode() string {
	return string(e.Code)
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
