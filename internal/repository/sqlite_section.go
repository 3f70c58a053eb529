package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evanmoss/dayboard/internal/db"
	"github.com/evanmoss/dayboard/internal/domain"
)

const sectionColumns = `id, name, order_index, include_in_focus, created_at, updated_at`

type SQLiteSectionRepo struct {
	db db.DBTX
}

func NewSQLiteSectionRepo(dbtx db.DBTX) *SQLiteSectionRepo {
	return &SQLiteSectionRepo{db: dbtx}
}

func (r *SQLiteSectionRepo) Create(ctx context.Context, s *domain.Section) error {
	query := `INSERT INTO sections (` + sectionColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Order,
		boolToInt(s.IncludeInFocus),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting section: %w", err)
	}
	return nil
}

func (r *SQLiteSectionRepo) GetByID(ctx context.Context, id string) (*domain.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE id = ?`
	s, err := scanSection(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning section: %w", err)
	}
	return s, nil
}

func (r *SQLiteSectionRepo) List(ctx context.Context) ([]domain.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections ORDER BY order_index, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		s, err := scanSection(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning section row: %w", err)
		}
		sections = append(sections, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating section rows: %w", err)
	}
	return sections, nil
}

func (r *SQLiteSectionRepo) Update(ctx context.Context, s *domain.Section) error {
	query := `UPDATE sections SET name = ?, order_index = ?, include_in_focus = ?,
		updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name, s.Order, boolToInt(s.IncludeInFocus), s.UpdatedAt.Format(time.RFC3339), s.ID)
	if err != nil {
		return fmt.Errorf("updating section: %w", err)
	}
	return requireRow(res, s.ID)
}

func (r *SQLiteSectionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting section: %w", err)
	}
	return requireRow(res, id)
}

func scanSection(scan func(dest ...any) error) (*domain.Section, error) {
	var s domain.Section
	var includeInFocus int
	var createdAt, updatedAt string

	if err := scan(&s.ID, &s.Name, &s.Order, &includeInFocus, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	s.IncludeInFocus = intToBool(includeInFocus)
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		s.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		s.UpdatedAt = ts
	}
	return &s, nil
}
