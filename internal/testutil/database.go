package testutil

import (
	"database/sql"
	"testing"

	"github.com/mjkim-dev/Portfolio-Sheets-Backend/internal/database"
)

// SetupTestDB opens an in-memory SQLite database with the audit schema
// applied. The connection is closed automatically when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	// In-memory SQLite drops its schema when the pool opens a second
	// connection, so pin everything to one.
	db.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}
