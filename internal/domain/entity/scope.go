// Package entity defines the core business entities for the domain layer.
package entity

import (
	"errors"

	"github.com/google/uuid"
)

// OwnerType represents the kind of owner a scoped resource belongs to.
type OwnerType string

const (
	OwnerTypeUser  OwnerType = "user"
	OwnerTypeGroup OwnerType = "group"
)

// ErrInvalidScope is returned when persisted ownership columns do not describe
// exactly one owner.
var ErrInvalidScope = errors.New("resource must belong to exactly one of a user or a group")

// Scope is the ownership context of a Category or Item: either a single user
// (personal) or a group. Build it with PersonalScope or GroupScope.
type Scope struct {
	OwnerType OwnerType
	OwnerID   uuid.UUID
}

// PersonalScope returns the scope of resources owned by a single user.
func PersonalScope(userID uuid.UUID) Scope {
	return Scope{OwnerType: OwnerTypeUser, OwnerID: userID}
}

// GroupScope returns the scope of resources shared within a group.
func GroupScope(groupID uuid.UUID) Scope {
	return Scope{OwnerType: OwnerTypeGroup, OwnerID: groupID}
}

// IsGroup reports whether the scope is group-owned.
func (s Scope) IsGroup() bool {
	return s.OwnerType == OwnerTypeGroup
}

// IsValid reports whether the scope names a known owner type and a non-nil owner.
func (s Scope) IsValid() bool {
	if s.OwnerID == uuid.Nil {
		return false
	}
	return s.OwnerType == OwnerTypeUser || s.OwnerType == OwnerTypeGroup
}

// Columns returns the (user_id, group_id) pair used by the storage layer.
// Exactly one of the two is non-nil.
func (s Scope) Columns() (userID *uuid.UUID, groupID *uuid.UUID) {
	id := s.OwnerID
	if s.IsGroup() {
		return nil, &id
	}
	return &id, nil
}

// ScopeFromColumns rebuilds a Scope from nullable storage columns.
func ScopeFromColumns(userID, groupID *uuid.UUID) (Scope, error) {
	switch {
	case userID != nil && groupID == nil:
		return PersonalScope(*userID), nil
	case groupID != nil && userID == nil:
		return GroupScope(*groupID), nil
	default:
		return Scope{}, ErrInvalidScope
	}
}

// SortOrderUpdate assigns a new position to a scoped resource.
type SortOrderUpdate struct {
	ID        uuid.UUID
	SortOrder int
}
