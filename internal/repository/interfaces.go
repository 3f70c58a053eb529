package repository

import (
	"context"
	"time"

	"github.com/evanmoss/dayboard/internal/domain"
)

// TaskPosition is one (order, parent, section) assignment within a reorder
// batch.
type TaskPosition struct {
	ID        string
	Order     int
	ParentID  *string
	SectionID *string
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns every task row; materialization operates on the full
	// snapshot.
	List(ctx context.Context) ([]domain.Task, error)
	ListSiblings(ctx context.Context, parentID, sectionID *string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	// ApplyPositions applies a reorder batch. Callers wanting atomicity run
	// it inside a unit of work.
	ApplyPositions(ctx context.Context, positions []TaskPosition) error
	Delete(ctx context.Context, id string) error
}

type SectionRepo interface {
	Create(ctx context.Context, s *domain.Section) error
	GetByID(ctx context.Context, id string) (*domain.Section, error)
	List(ctx context.Context) ([]domain.Section, error)
	Update(ctx context.Context, s *domain.Section) error
	Delete(ctx context.Context, id string) error
}

type OffLogRepo interface {
	// ListDay returns the day's off-set keyed by series id.
	ListDay(ctx context.Context, day time.Time) (map[string]bool, error)
	// ApplyBatch deletes then inserts series for the day. Run it inside a
	// unit of work: ledger correctness must never rely on partial success.
	ApplyBatch(ctx context.Context, day time.Time, add, remove []string) error
}

type ProfileRepo interface {
	// Get returns the single profile row, defaults when absent.
	Get(ctx context.Context) (*domain.Profile, error)
	// Seed writes the row with the given defaults only when none exists.
	Seed(ctx context.Context, p *domain.Profile) error
	Upsert(ctx context.Context, p *domain.Profile) error
}
