// Package group contains group-related use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/application/authz"
)

// RegenerateInviteCodeInput represents the input for rotating an invite code.
type RegenerateInviteCodeInput struct {
	GroupID     uuid.UUID
	RequesterID uuid.UUID
}

// RegenerateInviteCodeOutput represents the output of rotating an invite code.
type RegenerateInviteCodeOutput struct {
	InviteCode string
}

// RegenerateInviteCodeUseCase replaces a group's invite code. The old code
// stops resolving as soon as the update commits.
type RegenerateInviteCodeUseCase struct {
	groupRepo  adapter.GroupRepository
	authorizer *authz.Authorizer
}

// NewRegenerateInviteCodeUseCase creates a new RegenerateInviteCodeUseCase instance.
func NewRegenerateInviteCodeUseCase(groupRepo adapter.GroupRepository, authorizer *authz.Authorizer) *RegenerateInviteCodeUseCase {
	return &RegenerateInviteCodeUseCase{
		groupRepo:  groupRepo,
		authorizer: authorizer,
	}
}

// Execute performs the invite code rotation.
func (uc *RegenerateInviteCodeUseCase) Execute(ctx context.Context, input RegenerateInviteCodeInput) (*RegenerateInviteCodeOutput, error) {
	if _, err := uc.authorizer.RequireGroupOwner(ctx, input.RequesterID, input.GroupID); err != nil {
		return nil, err
	}

	code, err := generateInviteCode(ctx, uc.groupRepo)
	if err != nil {
		return nil, err
	}

	if err := uc.groupRepo.UpdateInviteCode(ctx, input.GroupID, code); err != nil {
		return nil, fmt.Errorf("failed to update invite code: %w", err)
	}

	return &RegenerateInviteCodeOutput{
		InviteCode: code,
	}, nil
}
