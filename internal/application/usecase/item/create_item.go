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

// CreateItemInput represents the input for creating an item.
type CreateItemInput struct {
	UserID      uuid.UUID
	GroupID     *uuid.UUID
	Name        string
	ProductName *string
	Price       *int
	Quantity    int
	Unit        string
	Threshold   *int
	Note        *string
	CategoryID  *uuid.UUID
}

// CreateItemOutput represents the output of creating an item.
type CreateItemOutput struct {
	Item *entity.Item
}

// CreateItemUseCase handles item creation logic.
type CreateItemUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	authorizer   *authz.Authorizer
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	authorizer *authz.Authorizer,
) *CreateItemUseCase {
	return &CreateItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		authorizer:   authorizer,
	}
}

// Execute performs the item creation operation.
func (uc *CreateItemUseCase) Execute(ctx context.Context, input CreateItemInput) (*CreateItemOutput, error) {
	// Validate input
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	unit, err := validateUnit(input.Unit)
	if err != nil {
		return nil, err
	}
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}
	if err := validateThreshold(input.Threshold); err != nil {
		return nil, err
	}

	scope, err := uc.authorizer.ResolveScope(ctx, input.UserID, input.GroupID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if err := checkCategoryScope(ctx, uc.categoryRepo, *input.CategoryID, scope); err != nil {
			return nil, err
		}
	}

	item := entity.NewItem(name, unit, input.Quantity, scope)
	item.ProductName = optionalText(input.ProductName)
	item.Price = input.Price
	item.Threshold = input.Threshold
	item.Note = optionalText(input.Note)
	item.CategoryID = input.CategoryID

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	// Reload to attach category display data
	created, err := uc.itemRepo.FindByID(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload item: %w", err)
	}

	return &CreateItemOutput{
		Item: created,
	}, nil
}
