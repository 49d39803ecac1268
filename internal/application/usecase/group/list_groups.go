// Package group contains group-related use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
)

// ListGroupsInput represents the input for listing groups.
type ListGroupsInput struct {
	UserID uuid.UUID
}

// ListGroupsOutput separates owned groups from joined ones.
type ListGroupsOutput struct {
	Owned  []*entity.GroupSummary
	Joined []*entity.GroupSummary
}

// ListGroupsUseCase handles listing a user's groups.
type ListGroupsUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewListGroupsUseCase creates a new ListGroupsUseCase instance.
func NewListGroupsUseCase(groupRepo adapter.GroupRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{
		groupRepo: groupRepo,
	}
}

// Execute retrieves all groups the user owns or belongs to.
func (uc *ListGroupsUseCase) Execute(ctx context.Context, input ListGroupsInput) (*ListGroupsOutput, error) {
	owned, err := uc.groupRepo.FindOwnedGroups(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned groups: %w", err)
	}

	joined, err := uc.groupRepo.FindJoinedGroups(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list joined groups: %w", err)
	}
	for _, g := range joined {
		g.InviteCode = ""
	}

	return &ListGroupsOutput{
		Owned:  owned,
		Joined: joined,
	}, nil
}
