// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

// Template data keys shared by Service and Worker.
const (
	keyInviterName = "inviter_name"
	keyGroupName   = "group_name"
	keyInviteCode  = "invite_code"
	keyInviteURL   = "invite_url"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// QueueGroupInvitation queues a group invitation email.
func (s *Service) QueueGroupInvitation(ctx context.Context, input adapter.GroupInvitationEmail) error {
	subject := fmt.Sprintf("%s invited you to %s on Stockee", input.InviterName, input.GroupName)

	job := entity.NewEmailJob(
		entity.TemplateGroupInvitation,
		input.Recipient,
		subject,
		map[string]string{
			keyInviterName: input.InviterName,
			keyGroupName:   input.GroupName,
			keyInviteCode:  input.InviteCode,
			keyInviteURL:   s.appBaseURL + "/join/" + input.InviteCode,
		},
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue group invitation email",
			err,
		)
	}

	return nil
}

var _ adapter.InvitationMailer = (*Service)(nil)
