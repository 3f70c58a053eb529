package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/db"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/engine"
	"github.com/evanmoss/dayboard/internal/repository"
	"github.com/google/uuid"
)

// snapshot is the in-memory state one read or intent operates on.
type snapshot struct {
	Tasks    []domain.Task
	Sections []domain.Section
	Profile  *domain.Profile
	Off      map[string]bool
	Today    time.Time
}

// loadSnapshot reads everything the engine needs from the given repos,
// which may be tx-scoped.
func loadSnapshot(ctx context.Context, tasks repository.TaskRepo, sections repository.SectionRepo, offLog repository.OffLogRepo, profiles repository.ProfileRepo, now time.Time) (*snapshot, error) {
	allTasks, err := tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	allSections, err := sections.List(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	off, err := offLog.ListDay(ctx, now)
	if err != nil {
		return nil, err
	}
	return &snapshot{
		Tasks:    allTasks,
		Sections: allSections,
		Profile:  profile,
		Off:      off,
		Today:    domain.DayOf(now),
	}, nil
}

// resolveNow returns the query's pinned time, or the wall clock.
func resolveNow(q contract.TaskQuery) time.Time {
	if q.Now != nil {
		return *q.Now
	}
	return time.Now().UTC()
}

// filterStateFrom builds the engine's caller-owned filter state from a
// query, with profile defaults filling the gaps.
func filterStateFrom(q contract.TaskQuery, snap *snapshot) engine.FilterState {
	fs := engine.FilterState{
		ViewMode:         domain.ViewMode(q.View),
		Today:            snap.Today,
		Search:           q.Search,
		Category:         q.Category,
		Priority:         domain.Priority(q.Priority),
		Section:          q.Section,
		FocusMode:        snap.Profile.FocusMode,
		FutureWindowDays: snap.Profile.FutureWindowDays,
		Off:              snap.Off,
	}
	if fs.ViewMode == "" {
		fs.ViewMode = domain.ViewDaily
	}
	if q.Status != "" {
		status := domain.TaskStatus(q.Status)
		fs.Status = &status
	}
	if q.FocusMode != nil {
		fs.FocusMode = *q.FocusMode
	}
	if q.FutureWindowDays != nil {
		fs.FutureWindowDays = *q.FutureWindowDays
	}
	return fs
}

// findVirtual materializes the snapshot and locates the virtual occurrence
// with the given id.
func findVirtual(snap *snapshot, virtualID string) (domain.Virtual, error) {
	for _, rep := range engine.Materialize(snap.Tasks, snap.Today) {
		if v, ok := rep.(domain.Virtual); ok && v.Task.ID == virtualID {
			return v, nil
		}
	}
	return domain.Virtual{}, contract.NewError(contract.ErrTaskNotFound,
		fmt.Sprintf("no virtual occurrence %s for %s", virtualID, snap.Today.Format("2006-01-02")))
}

// realizeVirtual persists a virtual occurrence as a new row, preserving its
// series. Must run inside the same transaction as whatever mutation
// prompted it.
func realizeVirtual(ctx context.Context, tasks repository.TaskRepo, v domain.Virtual) (*domain.Task, error) {
	t := v.Snapshot()
	t.ID = uuid.New().String()
	t.OriginalTaskID = v.SeriesID
	t.UpdatedAt = time.Now().UTC()
	if err := tasks.Create(ctx, &t); err != nil {
		return nil, contract.NewError(contract.ErrRealizeFailed,
			fmt.Sprintf("realizing %s: %v", v.Task.ID, err))
	}
	return &t, nil
}

// txRepos builds tx-scoped repositories for a unit of work callback.
func txRepos(tx db.DBTX) (repository.TaskRepo, repository.SectionRepo, repository.OffLogRepo, repository.ProfileRepo) {
	return repository.NewSQLiteTaskRepo(tx),
		repository.NewSQLiteSectionRepo(tx),
		repository.NewSQLiteOffLogRepo(tx),
		repository.NewSQLiteProfileRepo(tx)
}
