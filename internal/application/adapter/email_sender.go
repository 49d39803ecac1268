// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/stockee/backend/internal/domain/entity"
)

// SendEmailInput represents a rendered email ready for delivery.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailSender delivers rendered emails through an external provider.
type EmailSender interface {
	// Send returns the provider's message id.
	Send(ctx context.Context, input SendEmailInput) (string, error)
}

// GroupInvitationEmail is the data needed to invite someone to a group by email.
type GroupInvitationEmail struct {
	InviterName string
	GroupName   string
	InviteCode  string
	Recipient   string
}

// InvitationMailer queues invitation emails for asynchronous delivery.
type InvitationMailer interface {
	QueueGroupInvitation(ctx context.Context, input GroupInvitationEmail) error
}

// EmailQueueRepository defines the interface for email queue persistence operations.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// ClaimPendingJobs returns up to limit due jobs, ordered by scheduled time.
	ClaimPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error
}
