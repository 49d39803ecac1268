package db

import (
	"context"
	"testing"

	"github.com/stockee/backend/config"
	"github.com/stockee/backend/internal/integration/persistence/model"
)

func TestOpen_SQLite(t *testing.T) {
	database, err := Open(&config.DatabaseConfig{
		Driver: DriverSQLite,
		URL:    "file::memory:?cache=shared",
	})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("AutoMigrate returned error: %v", err)
	}
	if !database.DB().Migrator().HasTable(&model.ItemModel{}) {
		t.Error("expected items table to exist after migration")
	}
	if err := database.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck returned error: %v", err)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(&config.DatabaseConfig{Driver: "mysql"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestHealthCheck_Closed(t *testing.T) {
	database, err := Open(&config.DatabaseConfig{Driver: DriverSQLite, URL: ":memory:"})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := database.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	if err := database.HealthCheck(context.Background()); err == nil {
		t.Error("expected health check to fail on a closed database")
	}
}
