// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// Exactly one of UserID and GroupID is set; names are unique per scope.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_user_name;uniqueIndex:idx_categories_group_name"`
	Color     *string    `gorm:"type:varchar(7)"`
	SortOrder int        `gorm:"not null;default:0"`
	UserID    *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_categories_user_name;check:chk_categories_owner_scope,(user_id IS NULL) <> (group_id IS NULL)"`
	GroupID   *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_categories_group_name"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() (*entity.Category, error) {
	scope, err := entity.ScopeFromColumns(m.UserID, m.GroupID)
	if err != nil {
		return nil, err
	}

	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		SortOrder: m.SortOrder,
		Scope:     scope,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	userID, groupID := category.Scope.Columns()

	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		SortOrder: category.SortOrder,
		UserID:    userID,
		GroupID:   groupID,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
