// Package group contains group-related use cases.
package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
)

// CreateGroupInput represents the input for creating a group.
type CreateGroupInput struct {
	Name    string
	OwnerID uuid.UUID
}

// CreateGroupOutput represents the output of creating a group.
type CreateGroupOutput struct {
	Group *entity.Group
}

// CreateGroupUseCase handles group creation logic.
type CreateGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase instance.
func NewCreateGroupUseCase(groupRepo adapter.GroupRepository) *CreateGroupUseCase {
	return &CreateGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the group creation operation.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*CreateGroupOutput, error) {
	name, err := validateGroupName(input.Name)
	if err != nil {
		return nil, err
	}

	code, err := generateInviteCode(ctx, uc.groupRepo)
	if err != nil {
		return nil, err
	}

	// The owner is implicitly a member and gets no membership row
	group := entity.NewGroup(name, input.OwnerID, code)
	if err := uc.groupRepo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	slog.InfoContext(ctx, "Group created", "group_id", group.ID, "owner_id", input.OwnerID)

	return &CreateGroupOutput{
		Group: group,
	}, nil
}
