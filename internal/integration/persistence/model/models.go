// Package model defines database models for persistence layer.
package model

// All returns every model managed by AutoMigrate, in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&GroupModel{},
		&GroupMemberModel{},
		&CategoryModel{},
		&ItemModel{},
		&EmailQueueModel{},
	}
}
