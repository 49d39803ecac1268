// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stockee/backend/internal/domain/entity"
)

// whereScope restricts a query on table to rows owned by scope.
func whereScope(db *gorm.DB, table string, scope entity.Scope) *gorm.DB {
	if scope.IsGroup() {
		return db.Where(table+".group_id = ?", scope.OwnerID)
	}
	return db.Where(table+".user_id = ?", scope.OwnerID)
}

// lockScopeOwner takes a row lock on the user or group owning scope so that
// concurrent inserts into the scope serialize on Postgres. SQLite already
// serializes writers.
func lockScopeOwner(tx *gorm.DB, scope entity.Scope) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}

	ownerTable := "users"
	if scope.IsGroup() {
		ownerTable = "groups"
	}

	var ids []string
	return tx.Table(ownerTable).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", scope.OwnerID).
		Pluck("id", &ids).Error
}

// nextSortOrder returns max(sort_order)+1 within scope, or 0 when the scope is empty.
// It must run inside the transaction that inserts the new row.
func nextSortOrder(tx *gorm.DB, table string, scope entity.Scope) (int, error) {
	if err := lockScopeOwner(tx, scope); err != nil {
		return 0, err
	}

	var next *int
	result := whereScope(tx.Table(table), table, scope).
		Select("COALESCE(MAX(sort_order), -1) + 1").
		Scan(&next)
	if result.Error != nil {
		return 0, result.Error
	}
	if next == nil {
		return 0, nil
	}
	return *next, nil
}

// scopeIDSet returns the ids of all rows of table owned by scope.
func scopeIDSet(tx *gorm.DB, table string, scope entity.Scope) (map[string]struct{}, error) {
	var ids []string
	if err := whereScope(tx.Table(table), table, scope).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// applySortOrders writes each position after verifying every id belongs to
// scope. Nothing is written when an id is foreign; errForeign is returned.
func applySortOrders(tx *gorm.DB, table string, scope entity.Scope, updates []entity.SortOrderUpdate, errForeign error) error {
	owned, err := scopeIDSet(tx, table, scope)
	if err != nil {
		return err
	}
	for _, u := range updates {
		if _, ok := owned[u.ID.String()]; !ok {
			return errForeign
		}
	}

	for _, u := range updates {
		if err := tx.Table(table).Where("id = ?", u.ID).Update("sort_order", u.SortOrder).Error; err != nil {
			return err
		}
	}
	return nil
}
