// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Group represents a shared household. The owner is implicitly a member and
// never has a GroupMember row of their own.
type Group struct {
	ID         uuid.UUID
	Name       string
	OwnerID    uuid.UUID
	InviteCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewGroup creates a new Group entity.
func NewGroup(name string, ownerID uuid.UUID, inviteCode string) *Group {
	now := time.Now().UTC()

	return &Group{
		ID:         uuid.New(),
		Name:       name,
		OwnerID:    ownerID,
		InviteCode: inviteCode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsOwner reports whether userID owns the group.
func (g *Group) IsOwner(userID uuid.UUID) bool {
	return g.OwnerID == userID
}

// GroupMember represents a non-owner member of a group.
type GroupMember struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	// User information (populated when needed)
	UserName  string
	UserEmail string
}

// NewGroupMember creates a new GroupMember entity.
func NewGroupMember(groupID, userID uuid.UUID) *GroupMember {
	return &GroupMember{
		ID:        uuid.New(),
		GroupID:   groupID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}

// GroupSummary represents a group in list views.
type GroupSummary struct {
	ID          uuid.UUID
	Name        string
	OwnerID     uuid.UUID
	OwnerName   string
	InviteCode  string
	MemberCount int // includes the owner
	CreatedAt   time.Time
}

// GroupDetail is the full view of a group for one of its participants.
type GroupDetail struct {
	Group      *Group
	Owner      *User
	Members    []*GroupMember
	Categories []*CategoryWithCount
}

// InvitePreview is what a prospective member sees before joining.
type InvitePreview struct {
	GroupID     uuid.UUID
	GroupName   string
	OwnerName   string
	MemberCount int
}
