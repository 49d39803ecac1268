// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/stockee/backend/internal/domain/entity"
)

// CreateItemRequest represents the request body for creating an item.
type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	ProductName *string `json:"product_name"`
	Price       *int    `json:"price"`
	Quantity    int     `json:"quantity"`
	Unit        string  `json:"unit" binding:"required"`
	Threshold   *int    `json:"threshold"`
	Note        *string `json:"note"`
	CategoryID  *string `json:"category_id"`
}

// UpdateItemRequest represents a partial item update. Absent fields are left
// unchanged; the clear flags remove optional values.
type UpdateItemRequest struct {
	Name           *string `json:"name"`
	ProductName    *string `json:"product_name"`
	Price          *int    `json:"price"`
	ClearPrice     bool    `json:"clear_price"`
	Quantity       *int    `json:"quantity"`
	Unit           *string `json:"unit"`
	Threshold      *int    `json:"threshold"`
	ClearThreshold bool    `json:"clear_threshold"`
	Note           *string `json:"note"`
	CategoryID     *string `json:"category_id"`
	ClearCategory  bool    `json:"clear_category"`
}

// ItemResponse represents an item in API responses.
type ItemResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ProductName   *string   `json:"product_name"`
	Price         *int      `json:"price"`
	Quantity      int       `json:"quantity"`
	Unit          string    `json:"unit"`
	Threshold     *int      `json:"threshold"`
	Note          *string   `json:"note"`
	SortOrder     int       `json:"sort_order"`
	CategoryID    *string   `json:"category_id"`
	CategoryName  *string   `json:"category_name"`
	CategoryColor *string   `json:"category_color"`
	OwnerType     string    `json:"owner_type"`
	OwnerID       string    `json:"owner_id"`
	IsLowStock    bool      `json:"is_low_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ItemListResponse represents the response for listing items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts a domain Item entity to an ItemResponse DTO.
func ToItemResponse(item *entity.Item) ItemResponse {
	var categoryID *string
	if item.CategoryID != nil {
		id := item.CategoryID.String()
		categoryID = &id
	}

	return ItemResponse{
		ID:            item.ID.String(),
		Name:          item.Name,
		ProductName:   item.ProductName,
		Price:         item.Price,
		Quantity:      item.Quantity,
		Unit:          item.Unit,
		Threshold:     item.Threshold,
		Note:          item.Note,
		SortOrder:     item.SortOrder,
		CategoryID:    categoryID,
		CategoryName:  item.CategoryName,
		CategoryColor: item.CategoryColor,
		OwnerType:     string(item.Scope.OwnerType),
		OwnerID:       item.Scope.OwnerID.String(),
		IsLowStock:    item.IsLowStock(),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// ToItemResponses converts items to DTOs.
func ToItemResponses(items []*entity.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(item)
	}
	return responses
}
