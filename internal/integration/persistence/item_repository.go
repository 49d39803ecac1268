// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
	"github.com/stockee/backend/internal/integration/persistence/model"
)

const itemsTable = "items"

// itemRow is an item joined with the display fields of its category.
type itemRow struct {
	model.ItemModel `gorm:"embedded"`
	CategoryName    *string
	CategoryColor   *string
}

func (row *itemRow) toEntity() (*entity.Item, error) {
	item, err := row.ItemModel.ToEntity()
	if err != nil {
		return nil, err
	}
	item.CategoryName = row.CategoryName
	item.CategoryColor = row.CategoryColor
	return item, nil
}

// itemRepository implements the adapter.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository instance.
func NewItemRepository(db *gorm.DB) adapter.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// Create inserts an item at the end of its scope.
func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := nextSortOrder(tx, itemsTable, item.Scope)
		if err != nil {
			return err
		}
		item.SortOrder = next

		return tx.Create(model.ItemFromEntity(item)).Error
	})
}

func (r *itemRepository) joinedQuery(db *gorm.DB) *gorm.DB {
	return db.Table(itemsTable).
		Select("items.*, categories.name AS category_name, categories.color AS category_color").
		Joins("LEFT JOIN categories ON categories.id = items.category_id")
}

// FindByID retrieves an item by its ID.
func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return r.findByID(r.db.WithContext(ctx), id)
}

func (r *itemRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Item, error) {
	var rows []itemRow
	result := r.joinedQuery(db).Where("items.id = ?", id).Limit(1).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(rows) == 0 {
		return nil, domainerror.ErrItemNotFound
	}
	return rows[0].toEntity()
}

// FindByFilter lists items of a scope in sort order.
func (r *itemRepository) FindByFilter(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, error) {
	query := whereScope(r.joinedQuery(r.db.WithContext(ctx)), itemsTable, filter.Scope)

	switch {
	case filter.CategoryID != nil:
		query = query.Where("items.category_id = ?", *filter.CategoryID)
	case filter.Uncategorized:
		query = query.Where("items.category_id IS NULL")
	}

	if filter.LowStockOnly {
		query = query.Where("items.threshold IS NOT NULL AND items.quantity < items.threshold")
	}

	var rows []itemRow
	if err := query.Order("items.sort_order ASC, items.created_at ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.Item, 0, len(rows))
	for i := range rows {
		item, err := rows[i].toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Update saves the editable fields of an item.
func (r *itemRepository) Update(ctx context.Context, item *entity.Item, writeQuantity bool) error {
	item.UpdatedAt = time.Now().UTC()

	updates := map[string]any{
		"name":         item.Name,
		"product_name": item.ProductName,
		"price":        item.Price,
		"unit":         item.Unit,
		"threshold":    item.Threshold,
		"note":         item.Note,
		"category_id":  item.CategoryID,
		"updated_at":   item.UpdatedAt,
	}
	if writeQuantity {
		updates["quantity"] = item.Quantity
	}

	result := r.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", item.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrItemNotFound
	}
	return nil
}

// Delete removes an item.
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrItemNotFound
	}
	return nil
}

// IncrementQuantity atomically adds one to the stored quantity.
func (r *itemRepository) IncrementQuantity(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item *entity.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ItemModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"quantity":   gorm.Expr("quantity + ?", 1),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrItemNotFound
		}

		var err error
		item, err = r.findByID(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DecrementQuantity atomically subtracts one while the stored quantity is positive.
func (r *itemRepository) DecrementQuantity(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item *entity.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ItemModel{}).
			Where("id = ? AND quantity > 0", id).
			Updates(map[string]any{
				"quantity":   gorm.Expr("quantity - ?", 1),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}

		var err error
		item, err = r.findByID(tx, id)
		if err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrOutOfStock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Reorder applies all positions in a single transaction.
func (r *itemRepository) Reorder(ctx context.Context, scope entity.Scope, updates []entity.SortOrderUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applySortOrders(tx, itemsTable, scope, updates, domainerror.ErrItemNotInScope)
	})
}
