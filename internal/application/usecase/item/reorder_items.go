// Package item contains item-related use cases.
package item

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

// ReorderItemsInput represents the input for reordering items.
type ReorderItemsInput struct {
	UserID  uuid.UUID
	GroupID *uuid.UUID
	Orders  []entity.SortOrderUpdate
}

// ReorderItemsUseCase applies new positions to items of one scope. Every id
// must belong to the resolved scope or nothing changes.
type ReorderItemsUseCase struct {
	itemRepo   adapter.ItemRepository
	authorizer *authz.Authorizer
}

// NewReorderItemsUseCase creates a new ReorderItemsUseCase instance.
func NewReorderItemsUseCase(itemRepo adapter.ItemRepository, authorizer *authz.Authorizer) *ReorderItemsUseCase {
	return &ReorderItemsUseCase{
		itemRepo:   itemRepo,
		authorizer: authorizer,
	}
}

// Execute performs the reorder operation.
func (uc *ReorderItemsUseCase) Execute(ctx context.Context, input ReorderItemsInput) error {
	for _, o := range input.Orders {
		if o.SortOrder < 0 {
			return domainerror.NewItemError(
				domainerror.ErrCodeInvalidItemSortOrder,
				"sort order must not be negative",
				domainerror.ErrInvalidSortOrder,
			)
		}
	}

	scope, err := uc.authorizer.ResolveScope(ctx, input.UserID, input.GroupID)
	if err != nil {
		return err
	}

	if len(input.Orders) == 0 {
		return nil
	}

	if err := uc.itemRepo.Reorder(ctx, scope, input.Orders); err != nil {
		if errors.Is(err, domainerror.ErrItemNotInScope) {
			return domainerror.NewItemError(
				domainerror.ErrCodeItemNotInScope,
				"some items not found or do not belong to this scope",
				domainerror.ErrItemNotInScope,
			)
		}
		return fmt.Errorf("failed to reorder items: %w", err)
	}
	return nil
}
