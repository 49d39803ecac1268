// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/domain/entity"
)

// EmailQueueModel represents the email_queue table. The worker polls it by
// (status, scheduled_at).
type EmailQueueModel struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Template       string            `gorm:"type:varchar(50);not null"`
	RecipientEmail string            `gorm:"type:varchar(255);not null;index"`
	Subject        string            `gorm:"type:varchar(500);not null"`
	Data           map[string]string `gorm:"type:text;not null;serializer:json"`
	Status         string            `gorm:"type:varchar(20);not null;default:'pending';index:idx_email_queue_due,priority:1"`
	Attempts       int               `gorm:"not null;default:0"`
	MaxAttempts    int               `gorm:"not null;default:3"`
	LastError      string            `gorm:"type:text"`
	ProviderID     string            `gorm:"type:varchar(100)"`
	CreatedAt      time.Time         `gorm:"not null"`
	ScheduledAt    time.Time         `gorm:"not null;index:idx_email_queue_due,priority:2"`
	ProcessedAt    *time.Time
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts an EmailQueueModel to a domain EmailJob entity.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	data := m.Data
	if data == nil {
		data = make(map[string]string)
	}

	return &entity.EmailJob{
		ID:             m.ID,
		Template:       entity.EmailTemplate(m.Template),
		RecipientEmail: m.RecipientEmail,
		Subject:        m.Subject,
		Data:           data,
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ProviderID:     m.ProviderID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

// EmailQueueModelFromEntity creates an EmailQueueModel from a domain EmailJob entity.
func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	data := job.Data
	if data == nil {
		data = map[string]string{}
	}

	return &EmailQueueModel{
		ID:             job.ID,
		Template:       string(job.Template),
		RecipientEmail: job.RecipientEmail,
		Subject:        job.Subject,
		Data:           data,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ProviderID:     job.ProviderID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
		ProcessedAt:    job.ProcessedAt,
	}
}
