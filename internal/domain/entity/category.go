// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups items within a scope.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     *string
	SortOrder int
	Scope     Scope
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity. SortOrder is assigned by the
// repository on insert.
func NewCategory(name string, color *string, scope Scope) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Scope:     scope,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryWithCount is a category annotated with its live item count.
type CategoryWithCount struct {
	Category  *Category
	ItemCount int
}
