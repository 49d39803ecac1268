package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
	"github.com/stockee/backend/internal/integration/email/templates"
	"github.com/stockee/backend/internal/integration/persistence"
	"github.com/stockee/backend/internal/integration/persistence/model"
	"github.com/stockee/backend/internal/testutil"
)

type fakeSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (s *fakeSender) Send(_ context.Context, input adapter.SendEmailInput) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, input)
	return "msg-1", nil
}

func newWorker(t *testing.T, sender adapter.EmailSender) (*Worker, *Service, *gorm.DB) {
	t.Helper()

	db := testutil.NewDB(t)
	queue := persistence.NewEmailQueueRepository(db)
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	return NewWorker(queue, sender, renderer, DefaultWorkerConfig()), NewService(queue, "https://stockee.test/"), db
}

func onlyJob(t *testing.T, db *gorm.DB) model.EmailQueueModel {
	t.Helper()

	var rows []model.EmailQueueModel
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("failed to read queue: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one queued email, got %d", len(rows))
	}
	return rows[0]
}

func queueInvitation(t *testing.T, service *Service) {
	t.Helper()
	err := service.QueueGroupInvitation(context.Background(), adapter.GroupInvitationEmail{
		InviterName: "Alice",
		GroupName:   "Flat 3B",
		InviteCode:  "K7QX2M9P",
		Recipient:   "bob@example.com",
	})
	if err != nil {
		t.Fatalf("QueueGroupInvitation returned error: %v", err)
	}
}

func TestService_QueueGroupInvitation(t *testing.T) {
	_, service, db := newWorker(t, &fakeSender{})

	queueInvitation(t, service)

	row := onlyJob(t, db)
	if row.Status != string(entity.EmailStatusPending) {
		t.Errorf("expected pending status, got %q", row.Status)
	}
	if got := row.Data["invite_url"]; got != "https://stockee.test/join/K7QX2M9P" {
		t.Errorf("unexpected invite url %q", got)
	}
	if !strings.Contains(row.Subject, "Flat 3B") {
		t.Errorf("expected group name in subject, got %q", row.Subject)
	}
}

func TestWorker_SendsQueuedInvitation(t *testing.T) {
	sender := &fakeSender{}
	worker, service, db := newWorker(t, sender)
	queueInvitation(t, service)

	worker.ProcessNow(context.Background())

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "bob@example.com" {
		t.Errorf("unexpected recipient %q", sender.sent[0].To)
	}
	if !strings.Contains(sender.sent[0].HTML, "K7QX2M9P") || !strings.Contains(sender.sent[0].Text, "K7QX2M9P") {
		t.Error("expected invite code in both bodies")
	}

	row := onlyJob(t, db)
	if row.Status != string(entity.EmailStatusSent) || row.ProviderID != "msg-1" {
		t.Errorf("expected sent job with provider id, got status=%q provider=%q", row.Status, row.ProviderID)
	}

	// Sent jobs are not picked up again
	worker.ProcessNow(context.Background())
	if len(sender.sent) != 1 {
		t.Errorf("expected no resend, got %d sends", len(sender.sent))
	}
}

func TestWorker_TemporaryFailureIsRetried(t *testing.T) {
	sender := &fakeSender{err: domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "rate limited", errors.New("429"))}
	worker, service, db := newWorker(t, sender)
	queueInvitation(t, service)

	worker.ProcessNow(context.Background())

	row := onlyJob(t, db)
	if row.Status != string(entity.EmailStatusPending) {
		t.Errorf("expected job to stay pending, got %q", row.Status)
	}
	if row.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", row.Attempts)
	}
	if row.LastError == "" {
		t.Error("expected last error to be recorded")
	}
}

func TestWorker_PermanentFailureStops(t *testing.T) {
	sender := &fakeSender{err: domainerror.NewEmailError(domainerror.ErrCodePermanentEmailFailure, "rejected", errors.New("422"))}
	worker, service, db := newWorker(t, sender)
	queueInvitation(t, service)

	worker.ProcessNow(context.Background())

	if row := onlyJob(t, db); row.Status != string(entity.EmailStatusFailed) {
		t.Errorf("expected failed status, got %q", row.Status)
	}
}

func TestResendClient_Send(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"re_123"}`))
	}))
	defer server.Close()

	client, err := NewResendClient("re_test", "Stockee", "hello@stockee.test", server.URL)
	if err != nil {
		t.Fatalf("NewResendClient returned error: %v", err)
	}

	id, err := client.Send(context.Background(), adapter.SendEmailInput{
		To:      "bob@example.com",
		Subject: "Hi",
		HTML:    "<p>Hi</p>",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if id != "re_123" {
		t.Errorf("expected provider id re_123, got %q", id)
	}
	if received["from"] != "Stockee <hello@stockee.test>" {
		t.Errorf("unexpected from %v", received["from"])
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("401 unauthorized"), true},
		{errors.New("validation_error: Invalid `to` field"), true},
		{errors.New("429 too many requests"), false},
		{errors.New("connection reset by peer"), false},
	}

	for _, tt := range tests {
		if got := isPermanentError(tt.err); got != tt.want {
			t.Errorf("isPermanentError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
