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

// UpdateItemInput represents a partial item update. Nil fields are left
// unchanged. Blank ProductName or Note values clear the field; the Clear
// flags remove the numeric and category fields.
type UpdateItemInput struct {
	ItemID         uuid.UUID
	UserID         uuid.UUID
	Name           *string
	ProductName    *string
	Price          *int
	ClearPrice     bool
	Quantity       *int
	Unit           *string
	Threshold      *int
	ClearThreshold bool
	Note           *string
	CategoryID     *uuid.UUID
	ClearCategory  bool
}

// UpdateItemOutput represents the output of updating an item.
type UpdateItemOutput struct {
	Item *entity.Item
}

// UpdateItemUseCase handles partial item updates.
type UpdateItemUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	authorizer   *authz.Authorizer
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	authorizer *authz.Authorizer,
) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		authorizer:   authorizer,
	}
}

// Execute performs the item update operation.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	item, err := uc.authorizer.LoadItem(ctx, input.UserID, input.ItemID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if item.Name, err = validateName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Unit != nil {
		if item.Unit, err = validateUnit(*input.Unit); err != nil {
			return nil, err
		}
	}
	if input.ProductName != nil {
		item.ProductName = optionalText(input.ProductName)
	}
	if input.Note != nil {
		item.Note = optionalText(input.Note)
	}

	switch {
	case input.ClearPrice:
		item.Price = nil
	case input.Price != nil:
		if err := validatePrice(input.Price); err != nil {
			return nil, err
		}
		item.Price = input.Price
	}

	switch {
	case input.ClearThreshold:
		item.Threshold = nil
	case input.Threshold != nil:
		if err := validateThreshold(input.Threshold); err != nil {
			return nil, err
		}
		item.Threshold = input.Threshold
	}

	if input.Quantity != nil {
		if err := validateQuantity(*input.Quantity); err != nil {
			return nil, err
		}
		item.Quantity = *input.Quantity
	}

	switch {
	case input.ClearCategory:
		item.CategoryID = nil
	case input.CategoryID != nil:
		// The category must live in the item's stored scope
		if err := checkCategoryScope(ctx, uc.categoryRepo, *input.CategoryID, item.Scope); err != nil {
			return nil, err
		}
		item.CategoryID = input.CategoryID
	}

	if err := uc.itemRepo.Update(ctx, item, input.Quantity != nil); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	// Reload for category display data and the current quantity
	updated, err := uc.itemRepo.FindByID(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload item: %w", err)
	}

	return &UpdateItemOutput{
		Item: updated,
	}, nil
}
