// Package item contains item-related use cases.
package item

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewItemError(
			domainerror.ErrCodeItemNameRequired,
			"item name is required",
			domainerror.ErrItemNameRequired,
		)
	}
	return name, nil
}

func validateUnit(unit string) (string, error) {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return "", domainerror.NewItemError(
			domainerror.ErrCodeItemUnitRequired,
			"unit is required",
			domainerror.ErrItemUnitRequired,
		)
	}
	return unit, nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return domainerror.NewItemError(
			domainerror.ErrCodeNegativeQuantity,
			"quantity must not be negative",
			domainerror.ErrNegativeQuantity,
		)
	}
	return nil
}

func validatePrice(price *int) error {
	if price != nil && *price < 0 {
		return domainerror.NewItemError(
			domainerror.ErrCodeNegativePrice,
			"price must not be negative",
			domainerror.ErrNegativePrice,
		)
	}
	return nil
}

func validateThreshold(threshold *int) error {
	if threshold != nil && *threshold < 0 {
		return domainerror.NewItemError(
			domainerror.ErrCodeNegativeThreshold,
			"threshold must not be negative",
			domainerror.ErrNegativeThreshold,
		)
	}
	return nil
}

// optionalText trims s and maps blank values to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// checkCategoryScope verifies that categoryID names a category of scope.
// Unknown and foreign categories are reported the same way.
func checkCategoryScope(ctx context.Context, categoryRepo adapter.CategoryRepository, categoryID uuid.UUID, scope entity.Scope) error {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil || category.Scope != scope {
		return domainerror.NewItemError(
			domainerror.ErrCodeInvalidItemCategory,
			"category does not belong to the item's scope",
			domainerror.ErrCategoryOutsideItemScope,
		)
	}
	return nil
}
