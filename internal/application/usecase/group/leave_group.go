// Package group contains group-related use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

// LeaveGroupInput represents the input for leaving a group.
type LeaveGroupInput struct {
	GroupID uuid.UUID
	UserID  uuid.UUID
}

// LeaveGroupUseCase handles a member leaving a group.
type LeaveGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewLeaveGroupUseCase creates a new LeaveGroupUseCase instance.
func NewLeaveGroupUseCase(groupRepo adapter.GroupRepository) *LeaveGroupUseCase {
	return &LeaveGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the leave operation.
func (uc *LeaveGroupUseCase) Execute(ctx context.Context, input LeaveGroupInput) error {
	group, err := uc.groupRepo.FindGroupByID(ctx, input.GroupID)
	if err != nil {
		return fmt.Errorf("failed to find group: %w", err)
	}
	if group == nil {
		return domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupMember,
			"group not found or access denied",
			domainerror.ErrNotGroupMember,
		)
	}

	// Owners must delete the group instead
	if group.IsOwner(input.UserID) {
		return domainerror.NewGroupError(
			domainerror.ErrCodeOwnerCannotLeave,
			"the owner cannot leave the group; delete it instead",
			domainerror.ErrOwnerCannotLeave,
		)
	}

	member, err := uc.groupRepo.FindMemberByGroupAndUser(ctx, input.GroupID, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to find membership: %w", err)
	}
	if member == nil {
		return domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupMember,
			"group not found or access denied",
			domainerror.ErrNotGroupMember,
		)
	}

	if err := uc.groupRepo.DeleteMember(ctx, member.ID); err != nil {
		return fmt.Errorf("failed to leave group: %w", err)
	}
	return nil
}
