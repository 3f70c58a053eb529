package service

import (
	"context"
	"errors"
	"time"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/db"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/engine"
	"github.com/evanmoss/dayboard/internal/repository"
)

type moveService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewMoveService wires the reorder intent. A move of a virtual occurrence
// realizes it and applies the reorder batch in one transaction.
func NewMoveService(uow db.UnitOfWork, observers ...UseCaseObserver) MoveService {
	return &moveService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *moveService) Move(ctx context.Context, req contract.MoveRequest) (result *contract.MoveResult, err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "move.move",
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"task_id": req.TaskID},
			StartedAt: start,
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks, _, _, _ := txRepos(tx)

		allTasks, err := tasks.List(ctx)
		if err != nil {
			return err
		}

		movedID := req.TaskID
		realized := false
		if _, day, ok := domain.ParseVirtualID(req.TaskID); ok {
			snap := &snapshot{Tasks: allTasks, Today: domain.DayOf(day)}
			v, err := findVirtual(snap, req.TaskID)
			if err != nil {
				return err
			}
			row, err := realizeVirtual(ctx, tasks, v)
			if err != nil {
				return err
			}
			movedID = row.ID
			realized = true
			allTasks = append(allTasks, *row)
		}

		plan, err := engine.PlanReorder(allTasks, engine.MoveRequest{
			MovedID:      movedID,
			ParentID:     req.ParentID,
			SectionID:    req.SectionID,
			OverID:       req.OverID,
			DraggingDown: req.DraggingDown,
		})
		if errors.Is(err, engine.ErrTaskNotFound) {
			return contract.NewError(contract.ErrTaskNotFound, err.Error())
		}
		if err != nil {
			return err
		}

		positions := make([]repository.TaskPosition, len(plan.Updates))
		for i, u := range plan.Updates {
			positions[i] = repository.TaskPosition{ID: u.ID, Order: u.Order, ParentID: u.ParentID, SectionID: u.SectionID}
		}
		if err := tasks.ApplyPositions(ctx, positions); err != nil {
			return err
		}

		result = &contract.MoveResult{TaskID: movedID, Realized: realized, Updated: len(positions)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
