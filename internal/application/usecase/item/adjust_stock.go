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

// StockDirection selects whether stock goes up or down by one.
type StockDirection string

const (
	StockIncrement StockDirection = "increment"
	StockDecrement StockDirection = "decrement"
)

// AdjustStockInput represents the input for a single stock step.
type AdjustStockInput struct {
	ItemID    uuid.UUID
	UserID    uuid.UUID
	Direction StockDirection
}

// AdjustStockOutput represents the item state after the step.
type AdjustStockOutput struct {
	Item *entity.Item
}

// AdjustStockUseCase moves an item's quantity by one. The change is applied
// by the store as a relative delta, and quantity never drops below zero.
type AdjustStockUseCase struct {
	itemRepo   adapter.ItemRepository
	authorizer *authz.Authorizer
}

// NewAdjustStockUseCase creates a new AdjustStockUseCase instance.
func NewAdjustStockUseCase(itemRepo adapter.ItemRepository, authorizer *authz.Authorizer) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		itemRepo:   itemRepo,
		authorizer: authorizer,
	}
}

// Execute performs the stock adjustment.
func (uc *AdjustStockUseCase) Execute(ctx context.Context, input AdjustStockInput) (*AdjustStockOutput, error) {
	if _, err := uc.authorizer.LoadItem(ctx, input.UserID, input.ItemID); err != nil {
		return nil, err
	}

	var (
		item *entity.Item
		err  error
	)
	switch input.Direction {
	case StockIncrement:
		item, err = uc.itemRepo.IncrementQuantity(ctx, input.ItemID)
	case StockDecrement:
		item, err = uc.itemRepo.DecrementQuantity(ctx, input.ItemID)
	default:
		return nil, fmt.Errorf("unknown stock direction %q", input.Direction)
	}

	if errors.Is(err, domainerror.ErrOutOfStock) {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeOutOfStock,
			"stock cannot be negative",
			domainerror.ErrOutOfStock,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return &AdjustStockOutput{
		Item: item,
	}, nil
}
