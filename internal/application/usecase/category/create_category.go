// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/application/authz"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for creating a category.
type CreateCategoryInput struct {
	UserID  uuid.UUID
	GroupID *uuid.UUID
	Name    string
	Color   *string
}

// CreateCategoryOutput represents the output of creating a category.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	authorizer   *authz.Authorizer
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, authorizer *authz.Authorizer) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		authorizer:   authorizer,
	}
}

// Execute performs the category creation operation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := validateColor(input.Color); err != nil {
		return nil, err
	}

	scope, err := uc.authorizer.ResolveScope(ctx, input.UserID, input.GroupID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.categoryRepo.ExistsByNameInScope(ctx, name, scope, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, nameExistsError()
	}

	category := entity.NewCategory(name, input.Color, scope)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		// Lost a race with a concurrent create of the same name
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, nameExistsError()
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
