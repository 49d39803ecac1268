// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockee/backend/internal/domain/entity"
)

// ItemModel represents the items table in the database.
type ItemModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	ProductName *string    `gorm:"type:varchar(255)"`
	Price       *int       `gorm:"check:chk_items_price_non_negative,price IS NULL OR price >= 0"`
	Quantity    int        `gorm:"not null;default:0;check:chk_items_quantity_non_negative,quantity >= 0"`
	Unit        string     `gorm:"type:varchar(50);not null"`
	Threshold   *int       `gorm:"check:chk_items_threshold_non_negative,threshold IS NULL OR threshold >= 0"`
	Note        *string    `gorm:"type:text"`
	SortOrder   int        `gorm:"not null;default:0"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	UserID      *uuid.UUID `gorm:"type:uuid;index;check:chk_items_owner_scope,(user_id IS NULL) <> (group_id IS NULL)"`
	GroupID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the ItemModel.
func (ItemModel) TableName() string {
	return "items"
}

// ToEntity converts an ItemModel to a domain Item entity.
func (m *ItemModel) ToEntity() (*entity.Item, error) {
	scope, err := entity.ScopeFromColumns(m.UserID, m.GroupID)
	if err != nil {
		return nil, err
	}

	return &entity.Item{
		ID:          m.ID,
		Name:        m.Name,
		ProductName: m.ProductName,
		Price:       m.Price,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		Threshold:   m.Threshold,
		Note:        m.Note,
		SortOrder:   m.SortOrder,
		CategoryID:  m.CategoryID,
		Scope:       scope,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// ItemFromEntity creates an ItemModel from a domain Item entity.
func ItemFromEntity(item *entity.Item) *ItemModel {
	userID, groupID := item.Scope.Columns()

	return &ItemModel{
		ID:          item.ID,
		Name:        item.Name,
		ProductName: item.ProductName,
		Price:       item.Price,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		Threshold:   item.Threshold,
		Note:        item.Note,
		SortOrder:   item.SortOrder,
		CategoryID:  item.CategoryID,
		UserID:      userID,
		GroupID:     groupID,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
