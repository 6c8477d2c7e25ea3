package services

import (
	"fmt"
	"testing"

	"github.com/Francesco-Napolitano/WebAppApi/config"
	"github.com/Francesco-Napolitano/WebAppApi/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newTestDB creates a fresh in-memory database with the schema applied.
// Each test gets its own named memory DB so connection pooling and
// parallel tests cannot cross wires; foreign keys are on so the schema's
// SET NULL and CASCADE rules behave as in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// mustCreate inserts a row and fails the test on error.
func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create %T: %v", value, err)
	}
}

// countRows returns the number of rows matching the query.
func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("failed to count %T: %v", model, err)
	}
	return count
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
