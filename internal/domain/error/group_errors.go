// Package error defines domain-specific errors for the Stockee application.
package error

// Group domain errors.
var (
	// ErrGroupNotFound is returned when a group is absent or the caller cannot see it.
	ErrGroupNotFound = newKinded(ErrAccessDenied, "group not found")

	// ErrGroupNameRequired is returned when the group name is empty.
	ErrGroupNameRequired = newKinded(ErrInvalidInput, "group name is required")

	// ErrGroupNameTooLong is returned when the group name exceeds the maximum length.
	ErrGroupNameTooLong = newKinded(ErrInvalidInput, "group name too long")

	// ErrNotGroupOwner is returned when a non-owner attempts an owner-only action.
	ErrNotGroupOwner = newKinded(ErrAccessDenied, "only the group owner can perform this action")

	// ErrNotGroupMember is returned when the caller has no membership row in the group.
	ErrNotGroupMember = newKinded(ErrAccessDenied, "user is not a member of this group")

	// ErrMemberNotFound is returned when a member row does not exist under the group.
	ErrMemberNotFound = newKinded(ErrNotFound, "member not found")

	// ErrInviteCodeNotFound is returned when an invite code resolves to no group.
	ErrInviteCodeNotFound = newKinded(ErrNotFound, "invite code not found")

	// ErrUserAlreadyMember is returned when the user already belongs to the group.
	ErrUserAlreadyMember = newKinded(ErrConflict, "user is already a member of this group")

	// ErrCannotJoinOwnGroup is returned when the owner tries to join their own group.
	ErrCannotJoinOwnGroup = newKinded(ErrConflict, "cannot join a group you own")

	// ErrOwnerCannotLeave is returned when the owner tries to leave instead of deleting.
	ErrOwnerCannotLeave = newKinded(ErrConflict, "the owner cannot leave the group; delete it instead")

	// ErrInvalidInviteEmail is returned when an invite email address is malformed.
	ErrInvalidInviteEmail = newKinded(ErrInvalidInput, "invalid email address")
)

// GroupErrorCode defines error codes for group errors.
// Format: GRP-XXYYYY where XX is category and YYYY is specific error.
type GroupErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeGroupNotFound      GroupErrorCode = "GRP-010001"
	ErrCodeMemberNotFound     GroupErrorCode = "GRP-010002"
	ErrCodeInviteCodeNotFound GroupErrorCode = "GRP-010003"

	// Validation errors (02XXXX)
	ErrCodeGroupNameTooLong   GroupErrorCode = "GRP-020001"
	ErrCodeGroupNameRequired  GroupErrorCode = "GRP-020002"
	ErrCodeInvalidInviteEmail GroupErrorCode = "GRP-020004"
	ErrCodeMissingGroupFields GroupErrorCode = "GRP-020005"

	// Conflict errors (03XXXX)
	ErrCodeUserAlreadyMember  GroupErrorCode = "GRP-030002"
	ErrCodeCannotJoinOwnGroup GroupErrorCode = "GRP-030003"
	ErrCodeOwnerCannotLeave   GroupErrorCode = "GRP-030004"

	// Authorization errors (04XXXX)
	ErrCodeNotGroupOwner  GroupErrorCode = "GRP-040001"
	ErrCodeNotGroupMember GroupErrorCode = "GRP-040002"
)

// GroupError represents a group error with code and message.
type GroupError struct {
	Code    GroupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GroupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GroupError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the stable code as a string.
func (e *GroupError) ErrorCode() string {
	return string(e.Code)
}

// NewGroupError creates a new GroupError with the given code and message.
func NewGroupError(code GroupErrorCode, message string, err error) *GroupError {
	return &GroupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
