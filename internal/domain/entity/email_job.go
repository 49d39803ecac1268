// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the delivery state of a queued email.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplate names an embedded email template.
type EmailTemplate string

const (
	TemplateGroupInvitation EmailTemplate = "group_invitation"
)

// defaultMaxEmailAttempts bounds delivery retries for a single job.
const defaultMaxEmailAttempts = 3

// emailRetryDelays is indexed by the number of failed attempts so far.
var emailRetryDelays = []time.Duration{0, time.Minute, 5 * time.Minute}

// EmailJob is an email waiting in the outbound queue.
type EmailJob struct {
	ID             uuid.UUID
	Template       EmailTemplate
	RecipientEmail string
	Subject        string
	Data           map[string]string
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a pending job scheduled for immediate delivery.
func NewEmailJob(template EmailTemplate, recipient, subject string, data map[string]string) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		Template:       template,
		RecipientEmail: recipient,
		Subject:        subject,
		Data:           data,
		Status:         EmailStatusPending,
		MaxAttempts:    defaultMaxEmailAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkSent records a successful hand-off to the provider.
func (j *EmailJob) MarkSent(providerID string) {
	now := time.Now().UTC()
	j.Status = EmailStatusSent
	j.ProviderID = providerID
	j.ProcessedAt = &now
}

// MarkFailed records a failed attempt. Permanent failures and exhausted jobs
// become failed; anything else is rescheduled with backoff.
func (j *EmailJob) MarkFailed(err error, permanent bool) {
	j.Attempts++
	j.LastError = err.Error()

	now := time.Now().UTC()
	if permanent || j.Attempts >= j.MaxAttempts {
		j.Status = EmailStatusFailed
		j.ProcessedAt = &now
		return
	}

	delay := emailRetryDelays[len(emailRetryDelays)-1]
	if j.Attempts < len(emailRetryDelays) {
		delay = emailRetryDelays[j.Attempts]
	}
	j.Status = EmailStatusPending
	j.ScheduledAt = now.Add(delay)
}
