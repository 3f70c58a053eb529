package testutil

import (
	"time"

	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/google/uuid"
)

// Task options

type TaskOption func(*domain.Task)

func WithID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func WithSeries(seriesID string) TaskOption {
	return func(t *domain.Task) {
		t.OriginalTaskID = seriesID
	}
}

func WithRecurrence(r domain.Recurrence) TaskOption {
	return func(t *domain.Task) {
		t.Recurrence = r
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithDue(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithCreatedAt(ts time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = ts
		t.UpdatedAt = ts
	}
}

func WithSection(sectionID string) TaskOption {
	return func(t *domain.Task) {
		t.SectionID = &sectionID
	}
}

func WithParent(parentID string) TaskOption {
	return func(t *domain.Task) {
		t.ParentID = &parentID
	}
}

func WithOrder(order int) TaskOption {
	return func(t *domain.Task) {
		t.Order = order
	}
}

func WithCategory(category string) TaskOption {
	return func(t *domain.Task) {
		t.Category = category
	}
}

func NewTestTask(description string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:          uuid.New().String(),
		Description: description,
		Status:      domain.TaskTodo,
		Recurrence:  domain.RecurrenceNone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Section options

type SectionOption func(*domain.Section)

func WithSectionOrder(order int) SectionOption {
	return func(s *domain.Section) {
		s.Order = order
	}
}

func WithoutFocus() SectionOption {
	return func(s *domain.Section) {
		s.IncludeInFocus = false
	}
}

func NewTestSection(name string, opts ...SectionOption) *domain.Section {
	now := time.Now().UTC()
	s := &domain.Section{
		ID:             uuid.New().String(),
		Name:           name,
		IncludeInFocus: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
