// Package category contains category-related use cases.
package category

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
)

// maxCategoryNameLength is the longest category name accepted, in characters.
const maxCategoryNameLength = 50

var colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateName trims and validates a category name.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must be %d characters or less", maxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

// validateColor checks an optional #RRGGBB color.
func validateColor(color *string) error {
	if color == nil {
		return nil
	}
	if !colorRegex.MatchString(*color) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a hex code like #1A2B3C",
			domainerror.ErrInvalidColorFormat,
		)
	}
	return nil
}

// validateSortOrders rejects negative positions.
func validateSortOrders(updates []entity.SortOrderUpdate) error {
	for _, u := range updates {
		if u.SortOrder < 0 {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryOrder,
				"sort order must not be negative",
				domainerror.ErrInvalidSortOrder,
			)
		}
	}
	return nil
}

func nameExistsError() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		"a category with this name already exists",
		domainerror.ErrCategoryNameExists,
	)
}
