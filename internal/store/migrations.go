package store

import (
	"context"
	"database/sql"
)

// schema uses IF NOT EXISTS so migrate can run on every start.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id           TEXT PRIMARY KEY,
		algorithm    TEXT NOT NULL,
		time_quantum INTEGER NOT NULL DEFAULT 0,
		request      TEXT NOT NULL,
		response     TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
