package formatter

import (
	"sort"
	"strings"
	"time"

	"github.com/evanmoss/dayboard/internal/domain"
)

// UnsectionedLabel heads the group of tasks without a section.
const UnsectionedLabel = "Tasks"

// RenderTaskList renders the dashboard view: one table per section, in
// section order, with subtasks indented under their parent.
func RenderTaskList(reps []domain.Representative, sections []domain.Section, now time.Time) string {
	if len(reps) == 0 {
		return Dim("Nothing to show.") + "\n"
	}

	bySection := make(map[string][]domain.Task)
	for _, rep := range reps {
		t := rep.Snapshot()
		key := ""
		if t.SectionID != nil {
			key = *t.SectionID
		}
		bySection[key] = append(bySection[key], t)
	}

	ordered := append([]domain.Section(nil), sections...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Order != ordered[j].Order {
			return ordered[i].Order < ordered[j].Order
		}
		return ordered[i].ID < ordered[j].ID
	})

	var b strings.Builder
	if group, ok := bySection[""]; ok {
		writeSectionGroup(&b, UnsectionedLabel, group, now)
	}
	for _, s := range ordered {
		group, ok := bySection[s.ID]
		if !ok {
			continue
		}
		writeSectionGroup(&b, s.Name, group, now)
	}
	return b.String()
}

func writeSectionGroup(b *strings.Builder, name string, group []domain.Task, now time.Time) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(Header(name))
	b.WriteString("\n")

	headers := []string{"ID", "TASK", "STATUS", "PRIO", "DUE"}
	rows := make([][]string, 0, len(group))
	for _, t := range orderForDisplay(group) {
		rows = append(rows, taskRow(t, now))
	}
	b.WriteString(RenderTable(headers, rows))
}

// orderForDisplay sorts top-level tasks by order and nests each task's
// subtasks directly beneath it.
func orderForDisplay(group []domain.Task) []domain.Task {
	byParent := make(map[string][]domain.Task)
	var top []domain.Task
	for _, t := range group {
		if t.ParentID == nil {
			top = append(top, t)
			continue
		}
		byParent[*t.ParentID] = append(byParent[*t.ParentID], t)
	}

	sortGroup := func(ts []domain.Task) {
		sort.SliceStable(ts, func(i, j int) bool {
			if ts[i].Order != ts[j].Order {
				return ts[i].Order < ts[j].Order
			}
			return ts[i].ID < ts[j].ID
		})
	}
	sortGroup(top)

	out := make([]domain.Task, 0, len(group))
	for _, t := range top {
		out = append(out, t)
		children := byParent[t.ID]
		sortGroup(children)
		out = append(out, children...)
	}
	// Orphaned subtasks whose parent fell out of the view still show up.
	for parent, children := range byParent {
		if containsID(top, parent) {
			continue
		}
		sortGroup(children)
		out = append(out, children...)
	}
	return out
}

func containsID(ts []domain.Task, id string) bool {
	for _, t := range ts {
		if t.ID == id {
			return true
		}
	}
	return false
}

func taskRow(t domain.Task, now time.Time) []string {
	desc := t.Description
	if t.ParentID != nil {
		desc = "  └ " + desc
	}
	if badge := RecurrenceBadge(t.Recurrence); badge != "" {
		desc += " " + badge
	}

	due := Dim("--")
	if t.DueDate != nil {
		due = DueStyled(*t.DueDate, now)
	}

	return []string{
		TruncID(t.ID),
		desc,
		StatusPill(t.Status),
		PriorityBadge(t.Priority),
		due,
	}
}
