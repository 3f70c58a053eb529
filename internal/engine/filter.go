package engine

import (
	"strings"
	"time"

	"github.com/evanmoss/dayboard/internal/domain"
)

// SectionNone is the section filter sentinel meaning "unsectioned tasks
// only" (sectionID == nil), as opposed to the empty string meaning "any
// section".
const SectionNone = "none"

// FilterState is the caller-owned filter configuration applied to
// materialized tasks. The engine never stores one; services build a fresh
// value per request.
type FilterState struct {
	ViewMode domain.ViewMode
	Today    time.Time

	// Search matches case-insensitively against description, notes and link.
	Search string

	// Status, when set, keeps only tasks with that status. When unset,
	// archived tasks are excluded unless ViewMode is the archive view.
	Status *domain.TaskStatus

	Category string
	Priority domain.Priority
	// Section is "" for any, SectionNone for unsectioned, or a section id.
	Section string

	// FocusMode keeps only top-level tasks whose section is focus-eligible
	// (or who have no section).
	FocusMode bool

	// FutureWindowDays hides todo tasks whose relevant date lies more than
	// this many days after Today; -1 disables the window.
	FutureWindowDays int

	// Off is today's do-today off-set, keyed by series id.
	Off map[string]bool
	// TodayEligible applies the do-today exclusion. Only consumers of the
	// "today-eligible" subset (progress, next-up) set this; the general
	// task list shows opted-out tasks.
	TodayEligible bool
}

// ApplyFilters applies the filter predicates in their fixed order and
// returns the surviving representatives.
func ApplyFilters(reps []domain.Representative, sections []domain.Section, fs FilterState) []domain.Representative {
	focusEligible := focusEligibleSections(sections)

	var out []domain.Representative
	for _, rep := range reps {
		t := rep.Snapshot()

		// 1. Daily relevance.
		if fs.ViewMode == domain.ViewDaily && !dailyRelevant(t, fs.Today) {
			continue
		}

		// 2. Search.
		if fs.Search != "" && !matchesSearch(t, fs.Search) {
			continue
		}

		// 3. Status.
		if fs.ViewMode == domain.ViewArchive {
			if t.Status != domain.TaskArchived {
				continue
			}
		} else if fs.Status != nil {
			if t.Status != *fs.Status {
				continue
			}
		} else if t.Status == domain.TaskArchived {
			continue
		}

		// 4. Equality filters.
		if fs.Category != "" && t.Category != fs.Category {
			continue
		}
		if fs.Priority != domain.PriorityNone && t.Priority != fs.Priority {
			continue
		}
		if !matchesSection(t, fs.Section) {
			continue
		}

		// 5. Focus mode.
		if fs.FocusMode && !focusScoped(t, focusEligible) {
			continue
		}

		// 6. Future-visibility window. Tasks completed or archived today
		// already passed step 1 and always bypass the window.
		if beyondFutureWindow(t, fs.Today, fs.FutureWindowDays) && !finishedToday(t, fs.Today) {
			continue
		}

		// 7. Do-today exclusion.
		if fs.TodayEligible && excludedByOffLog(t, fs.Off) {
			continue
		}

		out = append(out, rep)
	}
	return out
}

// dailyRelevant implements the daily-view predicate: tasks finished today,
// plus todo tasks whose due date (or, lacking one, creation date) is today
// or earlier.
func dailyRelevant(t domain.Task, today time.Time) bool {
	if finishedToday(t, today) {
		return true
	}
	if t.Status != domain.TaskTodo {
		return false
	}
	return domain.OnOrBeforeDay(t.RelevantDate(), today)
}

// finishedToday reports whether the task transitioned to completed or
// archived on today's date.
func finishedToday(t domain.Task, today time.Time) bool {
	switch t.Status {
	case domain.TaskCompleted:
		return t.CompletedAt != nil && domain.SameDay(*t.CompletedAt, today)
	case domain.TaskArchived:
		return t.ArchivedAt != nil && domain.SameDay(*t.ArchivedAt, today)
	default:
		return false
	}
}

func matchesSearch(t domain.Task, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{t.Description, t.Notes, t.Link} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func matchesSection(t domain.Task, filter string) bool {
	switch filter {
	case "":
		return true
	case SectionNone:
		return t.SectionID == nil
	default:
		return t.SectionID != nil && *t.SectionID == filter
	}
}

func focusEligibleSections(sections []domain.Section) map[string]bool {
	eligible := make(map[string]bool, len(sections))
	for _, s := range sections {
		eligible[s.ID] = s.IncludeInFocus
	}
	return eligible
}

// focusScoped reports whether the task is in scope for focus mode: a
// top-level task whose section is focus-eligible or absent.
func focusScoped(t domain.Task, eligible map[string]bool) bool {
	if !t.TopLevel() {
		return false
	}
	return t.SectionID == nil || eligible[*t.SectionID]
}

func beyondFutureWindow(t domain.Task, today time.Time, windowDays int) bool {
	if windowDays < 0 || t.Status != domain.TaskTodo {
		return false
	}
	return domain.DaysBetween(today, t.RelevantDate()) > windowDays
}

// excludedByOffLog reports whether a todo, non-recurring task's series is in
// today's off-set. Recurring representatives are never excludable.
func excludedByOffLog(t domain.Task, off map[string]bool) bool {
	return t.Status == domain.TaskTodo && !t.Recurring() && off[t.Series()]
}
