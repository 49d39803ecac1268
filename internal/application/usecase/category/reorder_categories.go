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

// ReorderCategoriesInput represents the input for reordering categories.
type ReorderCategoriesInput struct {
	UserID  uuid.UUID
	GroupID *uuid.UUID
	Orders  []entity.SortOrderUpdate
}

// ReorderCategoriesUseCase applies new positions to categories of one scope
// as a single all-or-nothing write.
type ReorderCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	authorizer   *authz.Authorizer
}

// NewReorderCategoriesUseCase creates a new ReorderCategoriesUseCase instance.
func NewReorderCategoriesUseCase(categoryRepo adapter.CategoryRepository, authorizer *authz.Authorizer) *ReorderCategoriesUseCase {
	return &ReorderCategoriesUseCase{
		categoryRepo: categoryRepo,
		authorizer:   authorizer,
	}
}

// Execute performs the reorder operation.
func (uc *ReorderCategoriesUseCase) Execute(ctx context.Context, input ReorderCategoriesInput) error {
	if err := validateSortOrders(input.Orders); err != nil {
		return err
	}

	scope, err := uc.authorizer.ResolveScope(ctx, input.UserID, input.GroupID)
	if err != nil {
		return err
	}

	if len(input.Orders) == 0 {
		return nil
	}

	if err := uc.categoryRepo.Reorder(ctx, scope, input.Orders); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotInScope) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotInScope,
				"some categories not found or do not belong to this scope",
				domainerror.ErrCategoryNotInScope,
			)
		}
		return fmt.Errorf("failed to reorder categories: %w", err)
	}
	return nil
}
