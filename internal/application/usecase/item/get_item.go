// Package item contains item-related use cases.
package item

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/authz"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

// GetItemInput represents the input for getting an item.
type GetItemInput struct {
	ItemID uuid.UUID
	UserID uuid.UUID
}

// GetItemUseCase handles retrieving a single item.
type GetItemUseCase struct {
	authorizer *authz.Authorizer
}

// NewGetItemUseCase creates a new GetItemUseCase instance.
func NewGetItemUseCase(authorizer *authz.Authorizer) *GetItemUseCase {
	return &GetItemUseCase{
		authorizer: authorizer,
	}
}

// Execute returns the item when the caller can access its scope. Items the
// caller cannot see are reported as not found.
func (uc *GetItemUseCase) Execute(ctx context.Context, input GetItemInput) (*entity.Item, error) {
	item, err := uc.authorizer.LoadItem(ctx, input.UserID, input.ItemID)
	if errors.Is(err, domainerror.ErrAccessDenied) {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeItemNotFound,
			"item not found",
			domainerror.ErrItemNotFound,
		)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}
