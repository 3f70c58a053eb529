package engine

import (
	"time"

	"github.com/evanmoss/dayboard/internal/domain"
)

// Progress holds today's completion counts.
type Progress struct {
	Total     int
	Completed int
	Overdue   int
}

// DailyProgress computes today's counts over the progress scope: tasks
// relevant today that are top-level, in a focus-eligible section (or
// unsectioned), and not opted out of today via the off-log.
func DailyProgress(reps []domain.Representative, sections []domain.Section, off map[string]bool, today time.Time) Progress {
	today = domain.DayOf(today)
	focusEligible := focusEligibleSections(sections)

	var p Progress
	for _, rep := range reps {
		t := rep.Snapshot()
		if !dailyRelevant(t, today) || !focusScoped(t, focusEligible) || excludedByOffLog(t, off) {
			continue
		}

		if t.Status != domain.TaskSkipped {
			p.Total++
		}
		switch t.Status {
		case domain.TaskCompleted, domain.TaskArchived:
			p.Completed++
		case domain.TaskTodo:
			if t.DueDate != nil && domain.BeforeDay(*t.DueDate, today) {
				p.Overdue++
			}
		}
	}
	return p
}
