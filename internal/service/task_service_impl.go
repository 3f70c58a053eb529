package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/db"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	uow      db.UnitOfWork
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

// NewTaskService wires task CRUD. Mutations addressed at a virtual
// occurrence realize it first, in the same transaction.
func NewTaskService(uow db.UnitOfWork, tasks repository.TaskRepo, observers ...UseCaseObserver) TaskService {
	return &taskService{uow: uow, tasks: tasks, observer: useCaseObserverOrNoop(observers)}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) (err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "task.create",
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			StartedAt: start,
		})
	}()

	if t.Description == "" {
		return contract.NewError(contract.ErrInvalidInput, "description is required")
	}
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if !domain.ValidStatuses[string(t.Status)] {
		return contract.NewError(contract.ErrInvalidInput, fmt.Sprintf("invalid status %q", t.Status))
	}
	if t.Recurrence == "" {
		t.Recurrence = domain.RecurrenceNone
	}
	if !domain.ValidRecurrences[string(t.Recurrence)] {
		return contract.NewError(contract.ErrInvalidInput, fmt.Sprintf("invalid recurrence %q", t.Recurrence))
	}
	if t.Priority != "" && !domain.ValidPriorities[string(t.Priority)] {
		return contract.NewError(contract.ErrInvalidInput, fmt.Sprintf("invalid priority %q", t.Priority))
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks, _, _, _ := txRepos(tx)
		siblings, err := tasks.ListSiblings(ctx, t.ParentID, t.SectionID)
		if err != nil {
			return err
		}
		t.Order = len(siblings)
		return tasks.Create(ctx, t)
	})
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if _, day, ok := domain.ParseVirtualID(id); ok {
		allTasks, err := s.tasks.List(ctx)
		if err != nil {
			return nil, err
		}
		v, err := findVirtual(&snapshot{Tasks: allTasks, Today: domain.DayOf(day)}, id)
		if err != nil {
			return nil, err
		}
		t := v.Snapshot()
		return &t, nil
	}

	t, err := s.tasks.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contract.NewError(contract.ErrTaskNotFound, "no task "+id)
	}
	return t, err
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) (id string, err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "task.update",
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"task_id": t.ID},
			StartedAt: start,
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks, _, _, _ := txRepos(tx)

		row, err := s.materializeForWrite(ctx, tasks, t.ID)
		if err != nil {
			return err
		}

		// The edit keeps the persisted identity and series; everything else
		// comes from the caller.
		edited := *t
		edited.ID = row.ID
		edited.OriginalTaskID = row.OriginalTaskID
		edited.CreatedAt = row.CreatedAt
		edited.UpdatedAt = time.Now().UTC()
		if err := tasks.Update(ctx, &edited); err != nil {
			return err
		}
		id = edited.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *taskService) SetStatus(ctx context.Context, taskID string, status domain.TaskStatus) (id string, err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "task.set_status",
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"task_id": taskID, "status": string(status)},
			StartedAt: start,
		})
	}()

	if !domain.ValidStatuses[string(status)] {
		return "", contract.NewError(contract.ErrInvalidInput, fmt.Sprintf("invalid status %q", status))
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks, _, _, _ := txRepos(tx)

		row, err := s.materializeForWrite(ctx, tasks, taskID)
		if err != nil {
			return err
		}

		row.SetStatus(status, time.Now().UTC())
		if err := tasks.Update(ctx, row); err != nil {
			return err
		}
		id = row.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *taskService) Realize(ctx context.Context, virtualID string) (id string, err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "task.realize",
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"task_id": virtualID},
			StartedAt: start,
		})
	}()

	if _, _, ok := domain.ParseVirtualID(virtualID); !ok {
		return "", contract.NewError(contract.ErrInvalidInput, virtualID+" is not a virtual occurrence id")
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks, _, _, _ := txRepos(tx)
		row, err := s.materializeForWrite(ctx, tasks, virtualID)
		if err != nil {
			return err
		}
		id = row.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *taskService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "task.delete",
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"task_id": id},
			StartedAt: start,
		})
	}()

	if _, _, ok := domain.ParseVirtualID(id); ok {
		return contract.NewError(contract.ErrInvalidInput,
			"cannot delete an unrealized occurrence; archive the series template instead")
	}

	err = s.tasks.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return contract.NewError(contract.ErrTaskNotFound, "no task "+id)
	}
	return err
}

// materializeForWrite resolves an id to a persisted row inside a write
// transaction, realizing a virtual occurrence when needed.
func (s *taskService) materializeForWrite(ctx context.Context, tasks repository.TaskRepo, id string) (*domain.Task, error) {
	if _, day, ok := domain.ParseVirtualID(id); ok {
		allTasks, err := tasks.List(ctx)
		if err != nil {
			return nil, err
		}
		v, err := findVirtual(&snapshot{Tasks: allTasks, Today: domain.DayOf(day)}, id)
		if err != nil {
			return nil, err
		}
		return realizeVirtual(ctx, tasks, v)
	}

	row, err := tasks.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contract.NewError(contract.ErrTaskNotFound, "no task "+id)
	}
	return row, err
}
