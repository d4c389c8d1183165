package db

import (
	"database/sql"
	"fmt"
)

// The durable channel is a single keyed document: one row per storage key,
// value holding the serialized schedule. Legacy data migrated in from older
// installs keeps its own key in the same table.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedule_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations. Statements are idempotent, so the
// whole list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
