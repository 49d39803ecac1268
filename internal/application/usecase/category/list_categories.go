// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/application/authz"
	"github.com/stockee/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
// A nil GroupID lists the caller's personal categories.
type ListCategoriesInput struct {
	UserID  uuid.UUID
	GroupID *uuid.UUID
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.CategoryWithCount
	Scope      entity.Scope
}

// ListCategoriesUseCase handles listing categories of a scope.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	authorizer   *authz.Authorizer
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, authorizer *authz.Authorizer) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		authorizer:   authorizer,
	}
}

// Execute lists categories with their item counts, in sort order.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	scope, err := uc.authorizer.ResolveScope(ctx, input.UserID, input.GroupID)
	if err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.FindByScope(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
		Scope:      scope,
	}, nil
}
