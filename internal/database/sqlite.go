package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

// New opens the round ledger. With ":memory:" every connection would get its
// own empty database, so the pool is pinned to a single connection.
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS rounds (
		match_id TEXT NOT NULL,
		number INTEGER NOT NULL,
		player_name TEXT NOT NULL,
		outcome TEXT NOT NULL,
		winner TEXT NOT NULL DEFAULT '',
		by_bust INTEGER NOT NULL DEFAULT 0,
		player_points INTEGER NOT NULL,
		dealer_points INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (match_id, number)
	);

	CREATE INDEX IF NOT EXISTS idx_rounds_outcome ON rounds(match_id, outcome);
	`

	_, err := db.Exec(schema)
	return err
}
