// Package group contains group-related use cases.
package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

// JoinGroupInput represents the input for joining a group by invite code.
type JoinGroupInput struct {
	InviteCode string
	UserID     uuid.UUID
}

// JoinGroupOutput represents the output of joining a group.
type JoinGroupOutput struct {
	Group  *entity.Group
	Member *entity.GroupMember
}

// JoinGroupUseCase handles joining a group through its invite code.
type JoinGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewJoinGroupUseCase creates a new JoinGroupUseCase instance.
func NewJoinGroupUseCase(groupRepo adapter.GroupRepository) *JoinGroupUseCase {
	return &JoinGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the join operation.
func (uc *JoinGroupUseCase) Execute(ctx context.Context, input JoinGroupInput) (*JoinGroupOutput, error) {
	group, err := uc.groupRepo.FindGroupByInviteCode(ctx, strings.TrimSpace(input.InviteCode))
	if err != nil {
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	if group == nil {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeInviteCodeNotFound,
			"invalid invite code",
			domainerror.ErrInviteCodeNotFound,
		)
	}

	// Self-join is forbidden
	if group.IsOwner(input.UserID) {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeCannotJoinOwnGroup,
			"you already own this group",
			domainerror.ErrCannotJoinOwnGroup,
		)
	}

	existing, err := uc.groupRepo.FindMemberByGroupAndUser(ctx, group.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, alreadyMember()
	}

	member := entity.NewGroupMember(group.ID, input.UserID)
	err = uc.groupRepo.CreateMember(ctx, member)
	if errors.Is(err, domainerror.ErrUserAlreadyMember) {
		// Lost a race with a concurrent join
		return nil, alreadyMember()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	slog.InfoContext(ctx, "User joined group", "group_id", group.ID, "user_id", input.UserID)

	// Members never see the invite code through this path
	joined := *group
	joined.InviteCode = ""

	return &JoinGroupOutput{
		Group:  &joined,
		Member: member,
	}, nil
}

func alreadyMember() error {
	return domainerror.NewGroupError(
		domainerror.ErrCodeUserAlreadyMember,
		"you are already a member of this group",
		domainerror.ErrUserAlreadyMember,
	)
}
