// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/domain/entity"
	domainerror "github.com/stockee/backend/internal/domain/error"
	"github.com/stockee/backend/internal/integration/persistence/model"
)

const categoriesTable = "categories"

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create inserts a category at the end of its scope.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := nextSortOrder(tx, categoriesTable, category.Scope)
		if err != nil {
			return err
		}
		category.SortOrder = next

		return tx.Create(model.CategoryFromEntity(category)).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrCategoryNameExists
	}
	return err
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity()
}

// FindByScope lists the categories of a scope with item counts.
func (r *categoryRepository) FindByScope(ctx context.Context, scope entity.Scope) ([]*entity.CategoryWithCount, error) {
	var categoryModels []model.CategoryModel
	result := whereScope(r.db.WithContext(ctx), categoriesTable, scope).
		Order("sort_order ASC, created_at ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(categoryModels) == 0 {
		return []*entity.CategoryWithCount{}, nil
	}

	ids := make([]uuid.UUID, len(categoryModels))
	for i := range categoryModels {
		ids[i] = categoryModels[i].ID
	}

	// Count items per category in one query
	var counts []struct {
		CategoryID string
		ItemCount  int
	}
	result = r.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Select("category_id, COUNT(*) AS item_count").
		Where("category_id IN ?", ids).
		Group("category_id").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}

	countByID := make(map[string]int, len(counts))
	for _, c := range counts {
		countByID[c.CategoryID] = c.ItemCount
	}

	categories := make([]*entity.CategoryWithCount, 0, len(categoryModels))
	for i := range categoryModels {
		category, err := categoryModels[i].ToEntity()
		if err != nil {
			return nil, err
		}
		categories = append(categories, &entity.CategoryWithCount{
			Category:  category,
			ItemCount: countByID[category.ID.String()],
		})
	}
	return categories, nil
}

// ExistsByNameInScope checks for a name collision, optionally ignoring one category.
func (r *categoryRepository) ExistsByNameInScope(ctx context.Context, name string, scope entity.Scope, excludeID *uuid.UUID) (bool, error) {
	query := whereScope(r.db.WithContext(ctx).Model(&model.CategoryModel{}), categoriesTable, scope).
		Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update saves name and color changes.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	category.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":       category.Name,
			"color":      category.Color,
			"updated_at": category.UpdatedAt,
		})
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return domainerror.ErrCategoryNameExists
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category; its items become uncategorized.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ItemModel{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.CategoryModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCategoryNotFound
		}
		return nil
	})
}

// Reorder applies all positions in a single transaction.
func (r *categoryRepository) Reorder(ctx context.Context, scope entity.Scope, updates []entity.SortOrderUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applySortOrders(tx, categoriesTable, scope, updates, domainerror.ErrCategoryNotInScope)
	})
}
