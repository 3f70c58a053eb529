package service

import (
	"context"
	"time"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{profiles: profiles, observer: useCaseObserverOrNoop(observers)}
}

func (s *profileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) SetFocusedTask(ctx context.Context, taskID *string) error {
	return s.mutate(ctx, "profile.set_focused_task", func(p *domain.Profile) {
		p.FocusedTaskID = taskID
	})
}

func (s *profileService) SetFocusMode(ctx context.Context, on bool) error {
	return s.mutate(ctx, "profile.set_focus_mode", func(p *domain.Profile) {
		p.FocusMode = on
	})
}

func (s *profileService) SetFutureWindow(ctx context.Context, days int) error {
	if days < -1 {
		return contract.NewError(contract.ErrInvalidInput, "future window must be -1 (off) or a day count")
	}
	return s.mutate(ctx, "profile.set_future_window", func(p *domain.Profile) {
		p.FutureWindowDays = days
	})
}

func (s *profileService) mutate(ctx context.Context, name string, apply func(*domain.Profile)) (err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			StartedAt: start,
		})
	}()

	p, err := s.profiles.Get(ctx)
	if err != nil {
		return err
	}
	apply(p)
	p.UpdatedAt = time.Now().UTC()
	return s.profiles.Upsert(ctx, p)
}
