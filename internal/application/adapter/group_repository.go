// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/domain/entity"
)

// GroupRepository defines the interface for group persistence operations.
// Lookups return (nil, nil) when the row does not exist.
type GroupRepository interface {
	// CreateGroup creates a new group in the database.
	CreateGroup(ctx context.Context, group *entity.Group) error

	// FindGroupByID retrieves a group by its ID.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// FindGroupByInviteCode retrieves the group currently holding an invite code.
	FindGroupByInviteCode(ctx context.Context, code string) (*entity.Group, error)

	// InviteCodeExists reports whether any group holds the code.
	InviteCodeExists(ctx context.Context, code string) (bool, error)

	// UpdateInviteCode replaces the invite code of a group.
	UpdateInviteCode(ctx context.Context, groupID uuid.UUID, code string) error

	// DeleteGroup removes a group together with its members, categories and items.
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	// FindOwnedGroups lists groups owned by the user, newest first.
	FindOwnedGroups(ctx context.Context, userID uuid.UUID) ([]*entity.GroupSummary, error)

	// FindJoinedGroups lists groups the user joined as a member, newest first.
	FindJoinedGroups(ctx context.Context, userID uuid.UUID) ([]*entity.GroupSummary, error)

	// CountMembers counts membership rows of a group (the owner is not included).
	CountMembers(ctx context.Context, groupID uuid.UUID) (int, error)

	// CreateMember adds a new member to a group.
	CreateMember(ctx context.Context, member *entity.GroupMember) error

	// FindMemberByID retrieves a group member by its ID.
	FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.GroupMember, error)

	// FindMemberByGroupAndUser retrieves a member by group and user ID.
	FindMemberByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*entity.GroupMember, error)

	// FindMembersByGroupID retrieves all members of a group ordered by join time.
	FindMembersByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.GroupMember, error)

	// DeleteMember removes a membership row.
	DeleteMember(ctx context.Context, id uuid.UUID) error

	// IsUserMemberOfGroup checks if a user has a membership row in a group.
	IsUserMemberOfGroup(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
}
