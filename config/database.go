package config

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func InitDB(dbURL string) (*sql.DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// Migrations is the ordered, idempotent schema.
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS builds (
		id UUID PRIMARY KEY,
		owner_id TEXT NOT NULL,
		name VARCHAR(255) NOT NULL,
		preset VARCHAR(64) NOT NULL,
		parts JSONB NOT NULL DEFAULT '{}',
		manual_overrides JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_builds_owner_id ON builds(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_builds_updated_at ON builds(updated_at DESC)`,
}

func RunMigrations(db *sql.DB) error {
	for _, migration := range Migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
