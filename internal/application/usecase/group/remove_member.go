// Package group contains group-related use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/application/authz"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

// RemoveMemberInput represents the input for removing a member from a group.
type RemoveMemberInput struct {
	GroupID     uuid.UUID
	MemberID    uuid.UUID
	RequesterID uuid.UUID
}

// RemoveMemberUseCase handles the owner removing a member.
type RemoveMemberUseCase struct {
	groupRepo  adapter.GroupRepository
	authorizer *authz.Authorizer
}

// NewRemoveMemberUseCase creates a new RemoveMemberUseCase instance.
func NewRemoveMemberUseCase(groupRepo adapter.GroupRepository, authorizer *authz.Authorizer) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		groupRepo:  groupRepo,
		authorizer: authorizer,
	}
}

// Execute performs the member removal operation.
func (uc *RemoveMemberUseCase) Execute(ctx context.Context, input RemoveMemberInput) error {
	if _, err := uc.authorizer.RequireGroupOwner(ctx, input.RequesterID, input.GroupID); err != nil {
		return err
	}

	member, err := uc.groupRepo.FindMemberByID(ctx, input.MemberID)
	if err != nil {
		return fmt.Errorf("failed to find member: %w", err)
	}
	// The membership must belong to this group
	if member == nil || member.GroupID != input.GroupID {
		return domainerror.NewGroupError(
			domainerror.ErrCodeMemberNotFound,
			"member not found",
			domainerror.ErrMemberNotFound,
		)
	}

	if err := uc.groupRepo.DeleteMember(ctx, member.ID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}
