// Package auth contains authentication and account use cases.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
)

// UpdateProfileInput represents the input for updating the display name.
type UpdateProfileInput struct {
	UserID uuid.UUID
	Name   string
}

// UpdateProfileUseCase handles display name changes.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
	profile  *GetProfileUseCase
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		profile:  NewGetProfileUseCase(userRepo),
	}
}

// Execute updates the user's name.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*entity.User, error) {
	name, err := validateUserName(input.Name)
	if err != nil {
		return nil, err
	}

	user, err := uc.profile.Execute(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
