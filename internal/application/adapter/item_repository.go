// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/domain/entity"
)

// ItemRepository defines the interface for item persistence operations.
type ItemRepository interface {
	// Create inserts an item, assigning SortOrder = max(scope) + 1 in the
	// same transaction.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID retrieves an item by its ID. Missing rows yield
	// domainerror.ErrItemNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindByFilter lists items of a scope by sort order with category display data.
	FindByFilter(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, error)

	// Update saves all editable fields of an item. Quantity is only written
	// when writeQuantity is set so that concurrent stock deltas are not lost.
	Update(ctx context.Context, item *entity.Item, writeQuantity bool) error

	// Delete removes an item.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementQuantity atomically adds one and returns the new state.
	IncrementQuantity(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// DecrementQuantity atomically subtracts one when the quantity is positive.
	// It returns domainerror.ErrOutOfStock and leaves the row untouched otherwise.
	DecrementQuantity(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// Reorder applies all positions atomically after verifying every id belongs
	// to the scope; otherwise domainerror.ErrItemNotInScope is returned.
	Reorder(ctx context.Context, scope entity.Scope, updates []entity.SortOrderUpdate) error
}
