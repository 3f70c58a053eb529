package domain

import "time"

type Task struct {
	ID string
	// OriginalTaskID is the id of the series template this row was spawned
	// from. Empty for templates (the template's series id is its own id).
	OriginalTaskID string

	Description string
	Notes       string
	Link        string
	ImageURL    string
	Category    string
	Priority    Priority

	Status     TaskStatus
	Recurrence Recurrence

	// Placement
	ParentID  *string
	SectionID *string
	Order     int

	// Dates
	DueDate  *time.Time
	RemindAt *time.Time

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
	ArchivedAt  *time.Time
}

// Series returns the series id this task belongs to: the original task id
// when set, otherwise the task's own id (the row is the template).
func (t Task) Series() string {
	if t.OriginalTaskID != "" {
		return t.OriginalTaskID
	}
	return t.ID
}

// IsTemplate reports whether this row defines its series.
func (t Task) IsTemplate() bool {
	return t.OriginalTaskID == "" || t.OriginalTaskID == t.ID
}

// Recurring reports whether the task belongs to a recurring series.
func (t Task) Recurring() bool {
	return t.Recurrence != RecurrenceNone
}

// TopLevel reports whether the task is not a subtask.
func (t Task) TopLevel() bool {
	return t.ParentID == nil
}

// RelevantDate is the date used for "due today" and future-window decisions:
// the due date when present, otherwise the creation date.
func (t Task) RelevantDate() time.Time {
	if t.DueDate != nil {
		return *t.DueDate
	}
	return t.CreatedAt
}

// SetStatus transitions the task to the given status at now, stamping
// CompletedAt/ArchivedAt on the matching transitions and clearing them when
// the task leaves that status.
func (t *Task) SetStatus(status TaskStatus, now time.Time) {
	t.Status = status
	t.UpdatedAt = now

	switch status {
	case TaskCompleted:
		completedAt := now
		t.CompletedAt = &completedAt
	case TaskArchived:
		archivedAt := now
		t.ArchivedAt = &archivedAt
	default:
		t.CompletedAt = nil
		t.ArchivedAt = nil
	}
}
