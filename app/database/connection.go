package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the underlying connection pool.
type DB struct {
	*sql.DB
}

// NewConnection opens a SQLite database handle for the given DSN. Opening is
// lazy; the connection is not verified until first use, so an unreachable
// database does not prevent startup.
func NewConnection(databaseURL string) (*DB, error) {
	db, err := sql.Open("sqlite", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{db}, nil
}
