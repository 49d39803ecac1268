// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/domain/entity"
)

// UserRepository stores accounts. Emails are stored lowercased and trimmed;
// callers normalize before lookups.
type UserRepository interface {
	// Create returns domainerror.ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// FindByID and FindByEmail return domainerror.ErrUserNotFound for missing rows.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update saves the name and password hash.
	Update(ctx context.Context, user *entity.User) error

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
