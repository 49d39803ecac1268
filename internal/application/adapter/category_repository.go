// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create inserts a category, assigning SortOrder = max(scope) + 1 in the
	// same transaction.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID. Missing rows yield
	// domainerror.ErrCategoryNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByScope lists the categories of a scope with item counts, by sort order.
	FindByScope(ctx context.Context, scope entity.Scope) ([]*entity.CategoryWithCount, error)

	// ExistsByNameInScope checks for a name collision, optionally ignoring one category.
	ExistsByNameInScope(ctx context.Context, name string, scope entity.Scope, excludeID *uuid.UUID) (bool, error)

	// Update saves name and color changes.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category and detaches its items in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// Reorder applies all positions atomically. Every id must belong to the
	// scope or nothing is written and domainerror.ErrCategoryNotInScope is returned.
	Reorder(ctx context.Context, scope entity.Scope, updates []entity.SortOrderUpdate) error
}
