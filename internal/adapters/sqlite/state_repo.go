// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/empdir/internal/ports/secondary"
)

// stateKey is the fixed key the directory snapshot is stored under.
const stateKey = "empdir.directory"

// StateRepository implements secondary.StateRepository with SQLite. The
// snapshot is one JSON blob in a key-value table, written whole on every
// save.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new SQLite state repository.
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Load retrieves the last saved snapshot. A missing row means no prior
// state and returns (nil, nil); an undecodable blob is an error the
// caller is expected to treat as "no prior state".
func (r *StateRepository) Load(ctx context.Context) (*secondary.DirectorySnapshot, error) {
	var blob []byte
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM state WHERE key = ?", stateKey,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read directory state: %w", err)
	}

	var snap secondary.DirectorySnapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode directory state: %w", err)
	}
	return &snap, nil
}

// Save persists the full snapshot, replacing any previous one.
func (r *StateRepository) Save(ctx context.Context, snap *secondary.DirectorySnapshot) error {
	if snap == nil {
		snap = &secondary.DirectorySnapshot{}
	}
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode directory state: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`,
		stateKey, blob)
	if err != nil {
		return fmt.Errorf("failed to write directory state: %w", err)
	}
	return nil
}
