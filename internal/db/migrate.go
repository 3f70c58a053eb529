package db

import (
	"database/sql"
	"fmt"
)

// migrations is the ordered statement list applied by Migrate. Statements
// are written to be re-runnable against an already-migrated database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sections (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		order_index      INTEGER NOT NULL DEFAULT 0,
		include_in_focus INTEGER NOT NULL DEFAULT 1,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		original_task_id TEXT,
		description      TEXT NOT NULL,
		notes            TEXT NOT NULL DEFAULT '',
		link             TEXT NOT NULL DEFAULT '',
		image_url        TEXT NOT NULL DEFAULT '',
		category         TEXT NOT NULL DEFAULT '',
		priority         TEXT NOT NULL DEFAULT ''
		                 CHECK(priority IN ('', 'low', 'medium', 'high')),
		status           TEXT NOT NULL
		                 CHECK(status IN ('todo', 'completed', 'archived', 'skipped')),
		recurrence       TEXT NOT NULL DEFAULT 'none'
		                 CHECK(recurrence IN ('none', 'daily', 'weekly', 'monthly')),
		parent_id        TEXT REFERENCES tasks(id) ON DELETE CASCADE,
		section_id       TEXT REFERENCES sections(id) ON DELETE SET NULL,
		order_index      INTEGER NOT NULL DEFAULT 0,
		due_date         TEXT,
		remind_at        TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL,
		completed_at     TEXT,
		archived_at      TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_series ON tasks(original_task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_siblings ON tasks(parent_id, section_id)`,

	`CREATE TABLE IF NOT EXISTS off_log (
		day        TEXT NOT NULL,
		series_id  TEXT NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (day, series_id)
	)`,

	`CREATE TABLE IF NOT EXISTS profile (
		id                 INTEGER PRIMARY KEY CHECK(id = 1),
		focused_task_id    TEXT,
		focus_mode         INTEGER NOT NULL DEFAULT 0,
		future_window_days INTEGER NOT NULL DEFAULT -1,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
