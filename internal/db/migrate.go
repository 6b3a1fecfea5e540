package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		display_name  TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		provider      TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS auth_sessions (
		token      TEXT PRIMARY KEY,
		account_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_auth_sessions_account ON auth_sessions(account_id)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		client      TEXT NOT NULL DEFAULT '',
		deadline    TEXT NOT NULL,
		payment     REAL NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'ongoing'
		            CHECK(status IN ('ongoing','completed')),
		description TEXT NOT NULL DEFAULT '',
		owner_id    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_owner ON projects(owner_id)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		phone      TEXT NOT NULL DEFAULT '',
		country    TEXT NOT NULL DEFAULT '',
		owner_id   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_clients_owner ON clients(owner_id)`,

	// project_id is intentionally NOT a foreign key: deleting a project
	// leaves its payments dangling rather than cascading (see service docs).
	`CREATE TABLE IF NOT EXISTS payments (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL,
		amount      REAL NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'pending'
		            CHECK(status IN ('pending','paid','partial','refunded')),
		due_date    TEXT NOT NULL,
		paid_date   TEXT,
		description TEXT NOT NULL DEFAULT '',
		owner_id    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_payments_owner ON payments(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_project ON payments(project_id)`,
}
