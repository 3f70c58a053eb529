package service

import (
	"context"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// Update applies edits to a task. A virtual occurrence id is realized
	// first; the returned id is the persisted one.
	Update(ctx context.Context, t *domain.Task) (string, error)
	// SetStatus transitions a task (realizing a virtual occurrence first)
	// and returns the persisted id.
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) (string, error)
	// Realize turns a virtual occurrence into a persisted row and returns
	// its new id.
	Realize(ctx context.Context, virtualID string) (string, error)
	Delete(ctx context.Context, id string) error
}

type SectionService interface {
	Create(ctx context.Context, name string, includeInFocus bool) (*domain.Section, error)
	List(ctx context.Context) ([]domain.Section, error)
	Update(ctx context.Context, s *domain.Section) error
	Delete(ctx context.Context, id string) error
}

type DashboardService interface {
	// Tasks materializes and filters the dashboard's task list.
	Tasks(ctx context.Context, q contract.TaskQuery) ([]domain.Representative, error)
	// NextUp picks the single most relevant actionable task; nil when
	// nothing qualifies.
	NextUp(ctx context.Context, q contract.TaskQuery) (domain.Representative, error)
	Progress(ctx context.Context, q contract.TaskQuery) (*contract.ProgressReport, error)
}

type MoveService interface {
	Move(ctx context.Context, req contract.MoveRequest) (*contract.MoveResult, error)
}

type DoTodayService interface {
	// Toggle flips one task's series in today's off-set.
	Toggle(ctx context.Context, taskID string, q contract.TaskQuery) error
	// ToggleAll flips the whole daily candidate set by majority.
	ToggleAll(ctx context.Context, q contract.TaskQuery) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	SetFocusedTask(ctx context.Context, taskID *string) error
	SetFocusMode(ctx context.Context, on bool) error
	SetFutureWindow(ctx context.Context, days int) error
}
