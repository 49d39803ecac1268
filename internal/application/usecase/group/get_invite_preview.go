// Package group contains group-related use cases.
package group

import (
	"context"
	"fmt"
	"strings"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

// GetInvitePreviewInput represents the input for resolving an invite code.
type GetInvitePreviewInput struct {
	InviteCode string
}

// GetInvitePreviewUseCase resolves an invite code to a preview of its group.
type GetInvitePreviewUseCase struct {
	groupRepo adapter.GroupRepository
	userRepo  adapter.UserRepository
}

// NewGetInvitePreviewUseCase creates a new GetInvitePreviewUseCase instance.
func NewGetInvitePreviewUseCase(groupRepo adapter.GroupRepository, userRepo adapter.UserRepository) *GetInvitePreviewUseCase {
	return &GetInvitePreviewUseCase{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// Execute returns the preview of the group currently holding the code.
func (uc *GetInvitePreviewUseCase) Execute(ctx context.Context, input GetInvitePreviewInput) (*entity.InvitePreview, error) {
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

	owner, err := uc.userRepo.FindByID(ctx, group.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find group owner: %w", err)
	}

	memberCount, err := uc.groupRepo.CountMembers(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return &entity.InvitePreview{
		GroupID:     group.ID,
		GroupName:   group.Name,
		OwnerName:   owner.Name,
		MemberCount: memberCount + 1,
	}, nil
}
