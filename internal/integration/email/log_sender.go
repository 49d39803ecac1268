package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
)

// LogSender writes emails to the log instead of delivering them. It is used
// when no Resend API key is configured.
type LogSender struct{}

// NewLogSender creates a new LogSender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the email and returns a synthetic message id.
func (s *LogSender) Send(ctx context.Context, input adapter.SendEmailInput) (string, error) {
	id := "log-" + uuid.NewString()
	slog.InfoContext(ctx, "Email delivery skipped, no provider configured",
		"message_id", id,
		"to", input.To,
		"subject", input.Subject,
		"text", input.Text,
	)
	return id, nil
}

var _ adapter.EmailSender = (*LogSender)(nil)
