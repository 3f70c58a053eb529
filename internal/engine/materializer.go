// Package engine implements the pure core of the dashboard: series
// materialization, visibility filtering, sibling reordering, the do-today
// ledger, next-task selection, and daily progress. Every function computes
// its result from an in-memory snapshot plus a caller-supplied "today"; the
// package performs no I/O and holds no state.
package engine

import (
	"sort"
	"time"

	"github.com/evanmoss/dayboard/internal/domain"
)

// Materialize groups rows into recurrence series and emits exactly one
// representative per series for today: a persisted row when one applies, or
// a synthesized virtual occurrence for a recurring series whose rule matches
// today. Orphaned instances (series without a template row) pass through
// unchanged rather than being dropped. Output depends only on the set of
// rows and today, never on input order.
func Materialize(tasks []domain.Task, today time.Time) []domain.Representative {
	today = domain.DayOf(today)

	bySeries := make(map[string][]domain.Task)
	for _, t := range tasks {
		bySeries[t.Series()] = append(bySeries[t.Series()], t)
	}

	seriesIDs := make([]string, 0, len(bySeries))
	for id := range bySeries {
		seriesIDs = append(seriesIDs, id)
	}
	sort.Strings(seriesIDs)

	var out []domain.Representative
	for _, seriesID := range seriesIDs {
		out = append(out, materializeSeries(seriesID, bySeries[seriesID], today)...)
	}
	return out
}

func materializeSeries(seriesID string, rows []domain.Task, today time.Time) []domain.Representative {
	var template *domain.Task
	var instances []domain.Task
	for i := range rows {
		if rows[i].ID == seriesID {
			template = &rows[i]
		} else {
			instances = append(instances, rows[i])
		}
	}
	sortByCreation(instances)

	// No template: the series is malformed. Degrade to pass-through so the
	// rows stay visible instead of silently disappearing.
	if template == nil {
		out := make([]domain.Representative, 0, len(instances))
		for _, inst := range instances {
			out = append(out, domain.Real{Task: inst})
		}
		return out
	}

	if !template.Recurring() {
		return []domain.Representative{domain.Real{Task: *template}}
	}

	// A persisted instance created today wins outright.
	for _, inst := range instances {
		if domain.SameDay(inst.CreatedAt, today) {
			return []domain.Representative{domain.Real{Task: inst}}
		}
	}

	// Otherwise carry over the most recent unfinished occurrence.
	for i := len(instances) - 1; i >= 0; i-- {
		inst := instances[i]
		if domain.BeforeDay(inst.CreatedAt, today) && inst.Status == domain.TaskTodo {
			return []domain.Representative{domain.Real{Task: inst}}
		}
	}

	if !recurrenceMatches(template.Recurrence, template.CreatedAt, today) {
		return nil
	}
	if template.Status == domain.TaskArchived {
		return nil
	}

	source := *template
	if len(instances) > 0 {
		source = instances[len(instances)-1]
	}
	return []domain.Representative{domain.NewVirtual(source, seriesID, today)}
}

// recurrenceMatches reports whether today is an occurrence day for the rule,
// anchored at the template's creation date.
func recurrenceMatches(rule domain.Recurrence, anchor, today time.Time) bool {
	switch rule {
	case domain.RecurrenceDaily:
		return true
	case domain.RecurrenceWeekly:
		return anchor.Weekday() == today.Weekday()
	case domain.RecurrenceMonthly:
		return anchor.Day() == today.Day()
	default:
		return false
	}
}

// sortByCreation orders rows by creation time, tie-broken by id, so that
// every materialization decision is independent of input order.
func sortByCreation(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
