package engine

import (
	"errors"
	"sort"
	"time"

	"github.com/evanmoss/dayboard/internal/domain"
)

// ErrNotExcludable is returned when a toggle targets a recurring series;
// only non-recurring tasks can be hidden from today without completing.
var ErrNotExcludable = errors.New("recurring tasks cannot be hidden from today")

// OffLogBatch is one logical change to a day's do-today off-set. Remove is
// applied before Add (delete-then-insert), and the batch must be applied as
// a single unit.
type OffLogBatch struct {
	Day    time.Time
	Add    []string
	Remove []string
}

// Empty reports whether applying the batch would change nothing.
func (b OffLogBatch) Empty() bool {
	return len(b.Add) == 0 && len(b.Remove) == 0
}

// PlanToggle flips membership of the task's series in the day's off-set.
// Toggling twice restores the original state.
func PlanToggle(t domain.Task, off map[string]bool, day time.Time) (OffLogBatch, error) {
	if t.Recurring() {
		return OffLogBatch{}, ErrNotExcludable
	}

	batch := OffLogBatch{Day: domain.DayOf(day)}
	series := t.Series()
	if off[series] {
		batch.Remove = []string{series}
	} else {
		batch.Add = []string{series}
	}
	return batch, nil
}

// PlanToggleAll flips the whole candidate set by majority: when more than
// half the candidates are currently on (not in the off-set), everything is
// turned off; otherwise, ties included, everything is turned on. The batch
// is shaped as delete-then-insert over exactly the candidate series so a
// mixed selection converges instead of oscillating.
func PlanToggleAll(candidates []domain.Task, off map[string]bool, day time.Time) OffLogBatch {
	seen := make(map[string]bool)
	var series []string
	for _, t := range candidates {
		if t.Recurring() {
			continue
		}
		s := t.Series()
		if !seen[s] {
			seen[s] = true
			series = append(series, s)
		}
	}
	sort.Strings(series)

	batch := OffLogBatch{Day: domain.DayOf(day)}
	if len(series) == 0 {
		return batch
	}

	onCount := 0
	for _, s := range series {
		if !off[s] {
			onCount++
		}
	}

	batch.Remove = series
	if onCount > len(series)/2 {
		batch.Add = series
	}
	return batch
}
