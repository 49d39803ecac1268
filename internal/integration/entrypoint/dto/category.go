// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/stockee/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name  string  `json:"name" binding:"required"`
	Color *string `json:"color"`
}

// UpdateCategoryRequest represents a partial category update.
type UpdateCategoryRequest struct {
	Name       *string `json:"name"`
	Color      *string `json:"color"`
	ClearColor bool    `json:"clear_color"`
}

// SortOrderEntry assigns a position to one resource.
type SortOrderEntry struct {
	ID        string `json:"id" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// ReorderRequest represents the request body for reorder endpoints.
type ReorderRequest struct {
	Orders []SortOrderEntry `json:"orders" binding:"required"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	SortOrder int       `json:"sort_order"`
	OwnerType string    `json:"owner_type"`
	OwnerID   string    `json:"owner_id"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category, itemCount int) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Color:     category.Color,
		SortOrder: category.SortOrder,
		OwnerType: string(category.Scope.OwnerType),
		OwnerID:   category.Scope.OwnerID.String(),
		ItemCount: itemCount,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryResponses converts categories with counts to DTOs.
func ToCategoryResponses(categories []*entity.CategoryWithCount) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(c.Category, c.ItemCount)
	}
	return responses
}
