package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	config "activity-tracker.com/activity-tracker/internal/configs"
)

// NewDB opens a private in-memory SQLite database with the schema migrated.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewEmptyDB(t)
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

// NewEmptyDB opens a private in-memory SQLite database without any tables.
func NewEmptyDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.NewDatabaseClient(dsn, nil)
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
