package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/nkotak/student-collab/internal/database"
)

// newTestDB opens a fresh sqlite database in a temp directory and applies
// the schema.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}
