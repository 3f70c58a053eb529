package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/db"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/engine"
)

type doTodayService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewDoTodayService wires the do-today ledger intents. Each toggle rewrites
// the day's off-set in one transaction.
func NewDoTodayService(uow db.UnitOfWork, observers ...UseCaseObserver) DoTodayService {
	return &doTodayService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *doTodayService) Toggle(ctx context.Context, taskID string, q contract.TaskQuery) (err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "dotoday.toggle",
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"task_id": taskID},
			StartedAt: start,
		})
	}()

	// A virtual occurrence belongs to a recurring series, which is never
	// excludable.
	if _, _, ok := domain.ParseVirtualID(taskID); ok {
		return contract.NewError(contract.ErrNotExcludable, engine.ErrNotExcludable.Error())
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks, _, offLog, _ := txRepos(tx)

		t, err := tasks.GetByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return contract.NewError(contract.ErrTaskNotFound, "no task "+taskID)
			}
			return err
		}

		today := domain.DayOf(resolveNow(q))
		off, err := offLog.ListDay(ctx, today)
		if err != nil {
			return err
		}

		batch, err := engine.PlanToggle(*t, off, today)
		if errors.Is(err, engine.ErrNotExcludable) {
			return contract.NewError(contract.ErrNotExcludable, err.Error())
		}
		if err != nil {
			return err
		}
		return offLog.ApplyBatch(ctx, batch.Day, batch.Add, batch.Remove)
	})
}

func (s *doTodayService) ToggleAll(ctx context.Context, q contract.TaskQuery) (err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "dotoday.toggle_all",
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			StartedAt: start,
		})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks, sections, offLog, profiles := txRepos(tx)

		snap, err := loadSnapshot(ctx, tasks, sections, offLog, profiles, resolveNow(q))
		if err != nil {
			return err
		}

		// Candidates come from the daily view with the off-set filter left
		// out, so tasks already hidden today still count toward the majority.
		fs := filterStateFrom(q, snap)
		fs.ViewMode = domain.ViewDaily
		fs.TodayEligible = false
		reps := engine.ApplyFilters(engine.Materialize(snap.Tasks, snap.Today), snap.Sections, fs)

		candidates := make([]domain.Task, 0, len(reps))
		for _, rep := range reps {
			candidates = append(candidates, rep.Snapshot())
		}

		batch := engine.PlanToggleAll(candidates, snap.Off, snap.Today)
		if batch.Empty() {
			return nil
		}
		return offLog.ApplyBatch(ctx, batch.Day, batch.Add, batch.Remove)
	})
}
