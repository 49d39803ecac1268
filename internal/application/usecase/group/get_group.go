// Package group contains group-related use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/application/authz"
	"github.com/stockee/backend/internal/domain/entity"
)

// GetGroupInput represents the input for getting group details.
type GetGroupInput struct {
	GroupID uuid.UUID
	UserID  uuid.UUID
}

// GetGroupOutput represents the output of getting group details.
type GetGroupOutput struct {
	Detail  *entity.GroupDetail
	IsOwner bool
}

// GetGroupUseCase handles retrieving the full view of a group.
type GetGroupUseCase struct {
	groupRepo    adapter.GroupRepository
	userRepo     adapter.UserRepository
	categoryRepo adapter.CategoryRepository
	authorizer   *authz.Authorizer
}

// NewGetGroupUseCase creates a new GetGroupUseCase instance.
func NewGetGroupUseCase(
	groupRepo adapter.GroupRepository,
	userRepo adapter.UserRepository,
	categoryRepo adapter.CategoryRepository,
	authorizer *authz.Authorizer,
) *GetGroupUseCase {
	return &GetGroupUseCase{
		groupRepo:    groupRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		authorizer:   authorizer,
	}
}

// Execute retrieves the group detail for an owner or member.
func (uc *GetGroupUseCase) Execute(ctx context.Context, input GetGroupInput) (*GetGroupOutput, error) {
	group, err := uc.authorizer.RequireGroupAccess(ctx, input.UserID, input.GroupID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.userRepo.FindByID(ctx, group.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find group owner: %w", err)
	}

	members, err := uc.groupRepo.FindMembersByGroupID(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	categories, err := uc.categoryRepo.FindByScope(ctx, entity.GroupScope(group.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	// Only the owner sees the invite code
	isOwner := group.IsOwner(input.UserID)
	if !isOwner {
		group.InviteCode = ""
	}

	return &GetGroupOutput{
		Detail: &entity.GroupDetail{
			Group:      group,
			Owner:      owner,
			Members:    members,
			Categories: categories,
		},
		IsOwner: isOwner,
	}, nil
}
