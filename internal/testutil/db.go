// Package testutil provides an in-memory database and fixtures for package tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stockee/backend/internal/domain/entity"
	"github.com/stockee/backend/internal/integration/persistence/model"
)

// NewDB opens an isolated in-memory sqlite database with every table migrated.
// The database is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	dbSQL, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		_ = dbSQL.Close()
	})

	return db
}

// CreateUser inserts a user with the given name and a derived email.
func CreateUser(t testing.TB, db *gorm.DB, name string) *entity.User {
	t.Helper()

	user := entity.NewUser(fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]), name, "hash")
	if err := db.WithContext(context.Background()).Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// CreateGroup inserts a group owned by owner with a unique invite code.
func CreateGroup(t testing.TB, db *gorm.DB, owner *entity.User, name string) *entity.Group {
	t.Helper()

	group := entity.NewGroup(name, owner.ID, uuid.NewString()[:16])
	if err := db.Create(model.GroupFromEntity(group)).Error; err != nil {
		t.Fatalf("failed to create group: %v", err)
	}
	return group
}

// AddMember inserts a membership row for user in group.
func AddMember(t testing.TB, db *gorm.DB, group *entity.Group, user *entity.User) *entity.GroupMember {
	t.Helper()

	member := entity.NewGroupMember(group.ID, user.ID)
	if err := db.Create(model.GroupMemberFromEntity(member)).Error; err != nil {
		t.Fatalf("failed to add member: %v", err)
	}
	return member
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
