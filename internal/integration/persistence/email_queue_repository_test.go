package persistence

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
	"github.com/stockee/backend/internal/integration/persistence/model"
	"github.com/stockee/backend/internal/testutil"
)

func queueJob(t *testing.T, repo adapter.EmailQueueRepository) *entity.EmailJob {
	t.Helper()
	job := entity.NewEmailJob(entity.TemplateGroupInvitation, "bob@example.com", "Invite", map[string]string{"invite_code": "K7QX2M9P"})
	if err := repo.Create(context.Background(), job); err != nil {
		t.Fatalf("failed to queue job: %v", err)
	}
	return job
}

func TestClaimPendingJobs(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewEmailQueueRepository(db)
	job := queueJob(t, repo)

	jobs, err := repo.ClaimPendingJobs(ctx, 10)
	if err != nil {
		t.Fatalf("ClaimPendingJobs returned error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != job.ID || jobs[0].Status != entity.EmailStatusProcessing {
		t.Fatalf("expected the queued job in processing, got %+v", jobs)
	}
	if jobs[0].Data["invite_code"] != "K7QX2M9P" {
		t.Errorf("expected template data to round-trip, got %v", jobs[0].Data)
	}

	again, err := repo.ClaimPendingJobs(ctx, 10)
	if err != nil {
		t.Fatalf("ClaimPendingJobs returned error: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("expected claimed job not to be handed out twice, got %d", len(again))
	}
}

func TestClaimPendingJobs_SkipsJobsClaimedConcurrently(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewEmailQueueRepository(db)
	queueJob(t, repo)

	// Another worker claims every due row between our SELECT and UPDATE.
	fired := false
	err := db.Callback().Query().After("gorm:query").Register("test:concurrent_claim", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "email_queue" {
			return
		}
		fired = true
		tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE email_queue SET status = ?", entity.EmailStatusProcessing)
	})
	if err != nil {
		t.Fatalf("failed to register callback: %v", err)
	}

	jobs, err := repo.ClaimPendingJobs(context.Background(), 10)
	if err != nil {
		t.Fatalf("ClaimPendingJobs returned error: %v", err)
	}
	if !fired {
		t.Fatal("expected the concurrent claim to run")
	}
	if len(jobs) != 0 {
		t.Errorf("expected no jobs for a lost claim, got %d", len(jobs))
	}

	var processing int64
	db.Model(&model.EmailQueueModel{}).Where("status = ?", entity.EmailStatusProcessing).Count(&processing)
	if processing != 1 {
		t.Errorf("expected the row to stay claimed by the other worker, got %d processing", processing)
	}
}
