package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/evanmoss/dayboard/internal/domain"
)

// ErrTaskNotFound is returned when a reorder names a task that is not in
// the snapshot.
var ErrTaskNotFound = errors.New("task not found")

// MoveRequest describes a drag of one task to a new position, possibly
// across sibling groups (section, parent task, subtask list).
type MoveRequest struct {
	MovedID string
	// Destination sibling group.
	ParentID  *string
	SectionID *string
	// OverID is the sibling to insert relative to; nil or unknown appends.
	OverID *string
	// DraggingDown inserts after OverID instead of before it.
	DraggingDown bool
}

// Position is one (order, parent, section) assignment within a reorder
// batch.
type Position struct {
	ID        string
	Order     int
	ParentID  *string
	SectionID *string
}

// ReorderPlan is the full update batch for one move: a complete renumbering
// of the destination group (and of the source group when it differs), dense
// 0..n-1 in each. Applying the same plan twice is safe.
type ReorderPlan struct {
	Updates []Position
}

// PlanReorder computes the update batch realizing a move over a snapshot of
// persisted tasks. The snapshot must already contain the moved row; virtual
// occurrences are realized by the caller before planning.
func PlanReorder(tasks []domain.Task, req MoveRequest) (ReorderPlan, error) {
	moved, ok := findTask(tasks, req.MovedID)
	if !ok {
		return ReorderPlan{}, fmt.Errorf("planning reorder for %s: %w", req.MovedID, ErrTaskNotFound)
	}

	dest := siblingGroup(tasks, req.ParentID, req.SectionID, req.MovedID)
	idx := insertionIndex(dest, req.OverID, req.DraggingDown)

	plan := ReorderPlan{}
	for i, t := range dest[:idx] {
		plan.Updates = append(plan.Updates, Position{ID: t.ID, Order: i, ParentID: t.ParentID, SectionID: t.SectionID})
	}
	plan.Updates = append(plan.Updates, Position{ID: moved.ID, Order: idx, ParentID: req.ParentID, SectionID: req.SectionID})
	for i, t := range dest[idx:] {
		plan.Updates = append(plan.Updates, Position{ID: t.ID, Order: idx + 1 + i, ParentID: t.ParentID, SectionID: t.SectionID})
	}

	// A cross-group move leaves a gap behind; renumber the source too.
	if !sameGroup(moved.ParentID, moved.SectionID, req.ParentID, req.SectionID) {
		source := siblingGroup(tasks, moved.ParentID, moved.SectionID, req.MovedID)
		for i, t := range source {
			plan.Updates = append(plan.Updates, Position{ID: t.ID, Order: i, ParentID: t.ParentID, SectionID: t.SectionID})
		}
	}

	return plan, nil
}

func findTask(tasks []domain.Task, id string) (domain.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// siblingGroup returns the tasks sharing (parentID, sectionID), excluding
// excludeID, sorted by current order with id as the deterministic tiebreak.
func siblingGroup(tasks []domain.Task, parentID, sectionID *string, excludeID string) []domain.Task {
	var group []domain.Task
	for _, t := range tasks {
		if t.ID == excludeID {
			continue
		}
		if sameGroup(t.ParentID, t.SectionID, parentID, sectionID) {
			group = append(group, t)
		}
	}
	sort.SliceStable(group, func(i, j int) bool {
		if group[i].Order != group[j].Order {
			return group[i].Order < group[j].Order
		}
		return group[i].ID < group[j].ID
	})
	return group
}

func insertionIndex(siblings []domain.Task, overID *string, draggingDown bool) int {
	if overID == nil {
		return len(siblings)
	}
	for i, t := range siblings {
		if t.ID == *overID {
			if draggingDown {
				return i + 1
			}
			return i
		}
	}
	return len(siblings)
}

func sameGroup(parentA, sectionA, parentB, sectionB *string) bool {
	return samePtr(parentA, parentB) && samePtr(sectionA, sectionB)
}

func samePtr(a, b *string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}
