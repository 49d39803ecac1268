// Package group contains group-related use cases.
package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/application/authz"
)

// DeleteGroupInput represents the input for deleting a group.
type DeleteGroupInput struct {
	GroupID     uuid.UUID
	RequesterID uuid.UUID
}

// DeleteGroupUseCase handles deleting a group and everything it owns.
type DeleteGroupUseCase struct {
	groupRepo  adapter.GroupRepository
	authorizer *authz.Authorizer
}

// NewDeleteGroupUseCase creates a new DeleteGroupUseCase instance.
func NewDeleteGroupUseCase(groupRepo adapter.GroupRepository, authorizer *authz.Authorizer) *DeleteGroupUseCase {
	return &DeleteGroupUseCase{
		groupRepo:  groupRepo,
		authorizer: authorizer,
	}
}

// Execute performs the group deletion operation.
func (uc *DeleteGroupUseCase) Execute(ctx context.Context, input DeleteGroupInput) error {
	if _, err := uc.authorizer.RequireGroupOwner(ctx, input.RequesterID, input.GroupID); err != nil {
		return err
	}

	// Cascades to members, categories and items
	if err := uc.groupRepo.DeleteGroup(ctx, input.GroupID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	slog.InfoContext(ctx, "Group deleted", "group_id", input.GroupID)
	return nil
}
