// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a tracked stock entry.
type Item struct {
	ID          uuid.UUID
	Name        string
	ProductName *string
	Price       *int // smallest currency unit
	Quantity    int
	Unit        string
	Threshold   *int
	Note        *string
	SortOrder   int
	CategoryID  *uuid.UUID
	Scope       Scope
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Category display data (populated on list queries)
	CategoryName  *string
	CategoryColor *string
}

// NewItem creates a new Item entity. SortOrder is assigned by the repository
// on insert.
func NewItem(name, unit string, quantity int, scope Scope) *Item {
	now := time.Now().UTC()

	return &Item{
		ID:        uuid.New(),
		Name:      name,
		Unit:      unit,
		Quantity:  quantity,
		Scope:     scope,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsLowStock reports whether the quantity has dropped below the configured
// threshold. Items without a threshold are never low.
func (i *Item) IsLowStock() bool {
	return i.Threshold != nil && i.Quantity < *i.Threshold
}

// ItemFilter narrows an item listing within a scope.
type ItemFilter struct {
	Scope         Scope
	CategoryID    *uuid.UUID
	Uncategorized bool
	LowStockOnly  bool
}
