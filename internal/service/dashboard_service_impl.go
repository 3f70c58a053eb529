package service

import (
	"context"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/engine"
	"github.com/evanmoss/dayboard/internal/repository"
)

type dashboardService struct {
	tasks    repository.TaskRepo
	sections repository.SectionRepo
	offLog   repository.OffLogRepo
	profiles repository.ProfileRepo
}

func NewDashboardService(
	tasks repository.TaskRepo,
	sections repository.SectionRepo,
	offLog repository.OffLogRepo,
	profiles repository.ProfileRepo,
) DashboardService {
	return &dashboardService{tasks: tasks, sections: sections, offLog: offLog, profiles: profiles}
}

func (s *dashboardService) Tasks(ctx context.Context, q contract.TaskQuery) ([]domain.Representative, error) {
	snap, err := loadSnapshot(ctx, s.tasks, s.sections, s.offLog, s.profiles, resolveNow(q))
	if err != nil {
		return nil, err
	}

	reps := engine.Materialize(snap.Tasks, snap.Today)
	return engine.ApplyFilters(reps, snap.Sections, filterStateFrom(q, snap)), nil
}

func (s *dashboardService) NextUp(ctx context.Context, q contract.TaskQuery) (domain.Representative, error) {
	snap, err := loadSnapshot(ctx, s.tasks, s.sections, s.offLog, s.profiles, resolveNow(q))
	if err != nil {
		return nil, err
	}

	fs := filterStateFrom(q, snap)
	fs.TodayEligible = true
	reps := engine.ApplyFilters(engine.Materialize(snap.Tasks, snap.Today), snap.Sections, fs)

	focusedID := ""
	if snap.Profile.FocusedTaskID != nil {
		focusedID = *snap.Profile.FocusedTaskID
	}
	return engine.NextTask(reps, snap.Sections, snap.Off, focusedID), nil
}

func (s *dashboardService) Progress(ctx context.Context, q contract.TaskQuery) (*contract.ProgressReport, error) {
	snap, err := loadSnapshot(ctx, s.tasks, s.sections, s.offLog, s.profiles, resolveNow(q))
	if err != nil {
		return nil, err
	}

	reps := engine.Materialize(snap.Tasks, snap.Today)
	p := engine.DailyProgress(reps, snap.Sections, snap.Off, snap.Today)
	return &contract.ProgressReport{
		Day:       snap.Today,
		Total:     p.Total,
		Completed: p.Completed,
		Overdue:   p.Overdue,
	}, nil
}
