// Package group contains group-related use cases.
package group

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/application/authz"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

// SendInvitationInput represents the input for emailing an invite code.
type SendInvitationInput struct {
	GroupID     uuid.UUID
	RequesterID uuid.UUID
	Email       string
}

// SendInvitationUseCase queues an email carrying the group's current invite code.
type SendInvitationUseCase struct {
	userRepo   adapter.UserRepository
	mailer     adapter.InvitationMailer
	authorizer *authz.Authorizer
}

// NewSendInvitationUseCase creates a new SendInvitationUseCase instance.
func NewSendInvitationUseCase(
	userRepo adapter.UserRepository,
	mailer adapter.InvitationMailer,
	authorizer *authz.Authorizer,
) *SendInvitationUseCase {
	return &SendInvitationUseCase{
		userRepo:   userRepo,
		mailer:     mailer,
		authorizer: authorizer,
	}
}

// Execute validates the recipient and queues the invitation.
func (uc *SendInvitationUseCase) Execute(ctx context.Context, input SendInvitationInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailRegex.MatchString(email) {
		return domainerror.NewGroupError(
			domainerror.ErrCodeInvalidInviteEmail,
			"invalid email address",
			domainerror.ErrInvalidInviteEmail,
		)
	}

	group, err := uc.authorizer.RequireGroupOwner(ctx, input.RequesterID, input.GroupID)
	if err != nil {
		return err
	}

	inviter, err := uc.userRepo.FindByID(ctx, input.RequesterID)
	if err != nil {
		return fmt.Errorf("failed to find inviter: %w", err)
	}

	return uc.mailer.QueueGroupInvitation(ctx, adapter.GroupInvitationEmail{
		InviterName: inviter.Name,
		GroupName:   group.Name,
		InviteCode:  group.InviteCode,
		Recipient:   email,
	})
}
