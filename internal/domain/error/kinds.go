// Package error defines domain-specific errors for the Stockee application.
package error

import "errors"

// Error kinds. Every domain sentinel wraps exactly one of these so callers can
// classify a failure with errors.Is regardless of which coded error carries it.
var (
	// ErrAccessDenied means the caller lacks access to the scope, or the
	// resource does not exist. The two cases are deliberately not distinguished.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound means a looked-up resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means the request collides with existing state.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput means the request failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvariantViolation means the operation would break a domain invariant.
	ErrInvariantViolation = errors.New("invariant violation")
)

// kindedError is a sentinel message classified under one of the kinds above.
type kindedError struct {
	kind error
	msg  string
}

func (e *kindedError) Error() string {
	return e.msg
}

func (e *kindedError) Unwrap() error {
	return e.kind
}

// newKinded creates a sentinel error that matches kind via errors.Is.
func newKinded(kind error, msg string) error {
	return &kindedError{kind: kind, msg: msg}
}

// Kind returns the kind sentinel err belongs to, or nil for unclassified
// (infrastructure) errors.
func Kind(err error) error {
	for _, kind := range []error{
		ErrAccessDenied,
		ErrNotFound,
		ErrConflict,
		ErrInvalidInput,
		ErrInvariantViolation,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
