package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evanmoss/dayboard/internal/db"
	"github.com/evanmoss/dayboard/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, original_task_id, description, notes, link, image_url,
		category, priority, status, recurrence, parent_id, section_id, order_index,
		due_date, remind_at, created_at, updated_at, completed_at, archived_at`

// SQLiteTaskRepo implements TaskRepo over a DBTX, so the same type serves
// both plain and transactional access.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		nullableOriginalID(t),
		t.Description,
		t.Notes,
		t.Link,
		t.ImageURL,
		t.Category,
		string(t.Priority),
		string(t.Status),
		string(t.Recurrence),
		nullableString(t.ParentID),
		nullableString(t.SectionID),
		t.Order,
		nullableTimeToString(t.DueDate, dateLayout),
		nullableTimeToString(t.RemindAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		nullableTimeToString(t.ArchivedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanTask(row)
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListSiblings(ctx context.Context, parentID, sectionID *string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE parent_id IS ? AND section_id IS ?
		ORDER BY order_index, id`
	rows, err := r.db.QueryContext(ctx, query, nullableString(parentID), nullableString(sectionID))
	if err != nil {
		return nil, fmt.Errorf("listing siblings: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET
		description = ?, notes = ?, link = ?, image_url = ?, category = ?,
		priority = ?, status = ?, parent_id = ?, section_id = ?, order_index = ?,
		due_date = ?, remind_at = ?, updated_at = ?, completed_at = ?, archived_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Description,
		t.Notes,
		t.Link,
		t.ImageURL,
		t.Category,
		string(t.Priority),
		string(t.Status),
		nullableString(t.ParentID),
		nullableString(t.SectionID),
		t.Order,
		nullableTimeToString(t.DueDate, dateLayout),
		nullableTimeToString(t.RemindAt, time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		nullableTimeToString(t.ArchivedAt, time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRow(res, t.ID)
}

func (r *SQLiteTaskRepo) ApplyPositions(ctx context.Context, positions []TaskPosition) error {
	query := `UPDATE tasks SET order_index = ?, parent_id = ?, section_id = ?,
		updated_at = ? WHERE id = ?`
	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range positions {
		res, err := r.db.ExecContext(ctx, query,
			p.Order, nullableString(p.ParentID), nullableString(p.SectionID), now, p.ID)
		if err != nil {
			return fmt.Errorf("applying position for %s: %w", p.ID, err)
		}
		if err := requireRow(res, p.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRow(res, id)
}

// nullableOriginalID stores the template's own series pointer as NULL.
func nullableOriginalID(t *domain.Task) interface{} {
	if t.OriginalTaskID == "" || t.OriginalTaskID == t.ID {
		return nil
	}
	return t.OriginalTaskID
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, sql.ErrNoRows)
	}
	return nil
}

func scanTask(row *sql.Row) (*domain.Task, error) {
	t, err := scanTaskFields(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}

func scanTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTaskFields(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}

func scanTaskFields(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var originalID, parentID, sectionID sql.NullString
	var priority, status, recurrence string
	var dueDate, remindAt, createdAt, updatedAt, completedAt, archivedAt sql.NullString

	err := scan(
		&t.ID, &originalID, &t.Description, &t.Notes, &t.Link, &t.ImageURL,
		&t.Category, &priority, &status, &recurrence, &parentID, &sectionID,
		&t.Order, &dueDate, &remindAt, &createdAt, &updatedAt, &completedAt, &archivedAt,
	)
	if err != nil {
		return nil, err
	}

	if originalID.Valid {
		t.OriginalTaskID = originalID.String
	}
	t.Priority = domain.Priority(priority)
	t.Status = domain.TaskStatus(status)
	t.Recurrence = domain.Recurrence(recurrence)
	t.ParentID = stringPtr(parentID)
	t.SectionID = stringPtr(sectionID)
	t.DueDate = parseNullableTime(dueDate, dateLayout)
	t.RemindAt = parseNullableTime(remindAt, time.RFC3339)
	if ts := parseNullableTime(createdAt, time.RFC3339); ts != nil {
		t.CreatedAt = *ts
	}
	if ts := parseNullableTime(updatedAt, time.RFC3339); ts != nil {
		t.UpdatedAt = *ts
	}
	t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	t.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)

	return &t, nil
}
