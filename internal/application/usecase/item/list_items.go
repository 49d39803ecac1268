// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/application/authz"
	"github.com/stockee/backend/internal/domain/entity"
)

// ListItemsInput represents the input for listing items.
type ListItemsInput struct {
	UserID        uuid.UUID
	GroupID       *uuid.UUID
	CategoryID    *uuid.UUID
	Uncategorized bool
	LowStockOnly  bool
}

// ListItemsOutput represents the output of listing items.
type ListItemsOutput struct {
	Items []*entity.Item
	Scope entity.Scope
}

// ListItemsUseCase handles listing items of a scope.
type ListItemsUseCase struct {
	itemRepo   adapter.ItemRepository
	authorizer *authz.Authorizer
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(itemRepo adapter.ItemRepository, authorizer *authz.Authorizer) *ListItemsUseCase {
	return &ListItemsUseCase{
		itemRepo:   itemRepo,
		authorizer: authorizer,
	}
}

// Execute lists items in sort order with category display data attached.
func (uc *ListItemsUseCase) Execute(ctx context.Context, input ListItemsInput) (*ListItemsOutput, error) {
	scope, err := uc.authorizer.ResolveScope(ctx, input.UserID, input.GroupID)
	if err != nil {
		return nil, err
	}

	items, err := uc.itemRepo.FindByFilter(ctx, entity.ItemFilter{
		Scope:         scope,
		CategoryID:    input.CategoryID,
		Uncategorized: input.Uncategorized,
		LowStockOnly:  input.LowStockOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return &ListItemsOutput{
		Items: items,
		Scope: scope,
	}, nil
}
