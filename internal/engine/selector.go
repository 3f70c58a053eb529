package engine

import (
	"sort"

	"github.com/evanmoss/dayboard/internal/domain"
)

// NextTask picks the single most relevant actionable task: the pinned focus
// task while it stays actionable, otherwise the first eligible top-level
// task of the first non-empty section in section order, with the
// unsectioned group as the final fallback. Returns nil when nothing
// qualifies.
func NextTask(reps []domain.Representative, sections []domain.Section, off map[string]bool, focusedID string) domain.Representative {
	actionable := func(t domain.Task) bool {
		if t.Status != domain.TaskTodo {
			return false
		}
		return t.Recurring() || !off[t.Series()]
	}

	if focusedID != "" {
		for _, rep := range reps {
			t := rep.Snapshot()
			if t.ID == focusedID && actionable(t) {
				return rep
			}
		}
	}

	groups := make(map[string][]domain.Representative)
	for _, rep := range reps {
		t := rep.Snapshot()
		if !t.TopLevel() || !actionable(t) {
			continue
		}
		key := ""
		if t.SectionID != nil {
			key = *t.SectionID
		}
		groups[key] = append(groups[key], rep)
	}
	for _, group := range groups {
		sortByOrder(group)
	}

	ordered := make([]domain.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Order != ordered[j].Order {
			return ordered[i].Order < ordered[j].Order
		}
		return ordered[i].ID < ordered[j].ID
	})

	for _, s := range ordered {
		if group := groups[s.ID]; len(group) > 0 {
			return group[0]
		}
	}
	if group := groups[""]; len(group) > 0 {
		return group[0]
	}
	return nil
}

func sortByOrder(reps []domain.Representative) {
	sort.SliceStable(reps, func(i, j int) bool {
		a, b := reps[i].Snapshot(), reps[j].Snapshot()
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.ID < b.ID
	})
}
