package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/db"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/repository"
	"github.com/google/uuid"
)

type sectionService struct {
	uow      db.UnitOfWork
	sections repository.SectionRepo
	observer UseCaseObserver
}

func NewSectionService(uow db.UnitOfWork, sections repository.SectionRepo, observers ...UseCaseObserver) SectionService {
	return &sectionService{uow: uow, sections: sections, observer: useCaseObserverOrNoop(observers)}
}

func (s *sectionService) Create(ctx context.Context, name string, includeInFocus bool) (created *domain.Section, err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "section.create",
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			StartedAt: start,
		})
	}()

	if name == "" {
		return nil, contract.NewError(contract.ErrInvalidInput, "section name is required")
	}

	now := time.Now().UTC()
	section := &domain.Section{
		ID:             uuid.New().String(),
		Name:           name,
		IncludeInFocus: includeInFocus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, sections, _, _ := txRepos(tx)
		existing, err := sections.List(ctx)
		if err != nil {
			return err
		}
		section.Order = len(existing)
		return sections.Create(ctx, section)
	})
	if err != nil {
		return nil, err
	}
	return section, nil
}

func (s *sectionService) List(ctx context.Context) ([]domain.Section, error) {
	return s.sections.List(ctx)
}

func (s *sectionService) Update(ctx context.Context, section *domain.Section) (err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "section.update",
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"section_id": section.ID},
			StartedAt: start,
		})
	}()

	section.UpdatedAt = time.Now().UTC()
	err = s.sections.Update(ctx, section)
	if errors.Is(err, sql.ErrNoRows) {
		return contract.NewError(contract.ErrSectionNotFound, "no section "+section.ID)
	}
	return err
}

func (s *sectionService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "section.delete",
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"section_id": id},
			StartedAt: start,
		})
	}()

	err = s.sections.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return contract.NewError(contract.ErrSectionNotFound, "no section "+id)
	}
	return err
}
