package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evanmoss/dayboard/internal/db"
	"github.com/evanmoss/dayboard/internal/domain"
)

// SQLiteProfileRepo stores the single-row user profile.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(dbtx db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: dbtx}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT focused_task_id, focus_mode, future_window_days, created_at, updated_at
		 FROM profile WHERE id = 1`)

	var p domain.Profile
	var focusedID sql.NullString
	var focusMode int
	var createdAt, updatedAt string
	err := row.Scan(&focusedID, &focusMode, &p.FutureWindowDays, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return &domain.Profile{FutureWindowDays: -1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.FocusedTaskID = stringPtr(focusedID)
	p.FocusMode = intToBool(focusMode)
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		p.UpdatedAt = ts
	}
	return &p, nil
}

// Seed inserts the profile row with the given defaults when none exists yet.
// An existing row is left untouched.
func (r *SQLiteProfileRepo) Seed(ctx context.Context, p *domain.Profile) error {
	query := `INSERT OR IGNORE INTO profile (id, focused_task_id, focus_mode, future_window_days, created_at, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		nullableString(p.FocusedTaskID),
		boolToInt(p.FocusMode),
		p.FutureWindowDays,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("seeding profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profile (id, focused_task_id, focus_mode, future_window_days, created_at, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			focused_task_id = excluded.focused_task_id,
			focus_mode = excluded.focus_mode,
			future_window_days = excluded.future_window_days,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		nullableString(p.FocusedTaskID),
		boolToInt(p.FocusMode),
		p.FutureWindowDays,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
