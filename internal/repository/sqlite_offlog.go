package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/evanmoss/dayboard/internal/db"
	"github.com/evanmoss/dayboard/internal/domain"
)

// SQLiteOffLogRepo persists the per-day do-today off-set.
type SQLiteOffLogRepo struct {
	db db.DBTX
}

func NewSQLiteOffLogRepo(dbtx db.DBTX) *SQLiteOffLogRepo {
	return &SQLiteOffLogRepo{db: dbtx}
}

func (r *SQLiteOffLogRepo) ListDay(ctx context.Context, day time.Time) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT series_id FROM off_log WHERE day = ?`,
		domain.DayOf(day).Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing off-log: %w", err)
	}
	defer rows.Close()

	off := make(map[string]bool)
	for rows.Next() {
		var series string
		if err := rows.Scan(&series); err != nil {
			return nil, fmt.Errorf("scanning off-log row: %w", err)
		}
		off[series] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating off-log rows: %w", err)
	}
	return off, nil
}

func (r *SQLiteOffLogRepo) ApplyBatch(ctx context.Context, day time.Time, add, remove []string) error {
	dayStr := domain.DayOf(day).Format(dateLayout)
	now := time.Now().UTC().Format(time.RFC3339)

	for _, series := range remove {
		if _, err := r.db.ExecContext(ctx,
			`DELETE FROM off_log WHERE day = ? AND series_id = ?`, dayStr, series); err != nil {
			return fmt.Errorf("removing off-log entry %s: %w", series, err)
		}
	}
	for _, series := range add {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO off_log (day, series_id, created_at) VALUES (?, ?, ?)`,
			dayStr, series, now); err != nil {
			return fmt.Errorf("adding off-log entry %s: %w", series, err)
		}
	}
	return nil
}
