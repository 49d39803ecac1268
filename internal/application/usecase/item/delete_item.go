// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/application/authz"
)

// DeleteItemInput represents the input for deleting an item.
type DeleteItemInput struct {
	ItemID uuid.UUID
	UserID uuid.UUID
}

// DeleteItemUseCase handles item deletion.
type DeleteItemUseCase struct {
	itemRepo   adapter.ItemRepository
	authorizer *authz.Authorizer
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(itemRepo adapter.ItemRepository, authorizer *authz.Authorizer) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		itemRepo:   itemRepo,
		authorizer: authorizer,
	}
}

// Execute performs the item deletion operation.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) error {
	item, err := uc.authorizer.LoadItem(ctx, input.UserID, input.ItemID)
	if err != nil {
		return err
	}

	if err := uc.itemRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
