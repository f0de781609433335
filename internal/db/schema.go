package db

import (
	"database/sql"
	"fmt"
)

// Schema is the full database schema: one key-value table holding the
// directory snapshot blob.
const Schema = `
CREATE TABLE IF NOT EXISTS state (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema creates the schema if it does not exist yet.
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
