package contract

import "time"

// TaskQuery configures one read of the dashboard. Zero-value fields mean
// "no filter"; nil pointers fall back to the stored profile defaults.
type TaskQuery struct {
	// Now decouples "today" from the wall clock; nil uses time.Now.
	Now *time.Time

	// View is "daily", "all" or "archive".
	View string

	Search   string
	Status   string
	Category string
	Priority string
	// Section filters by section id; "none" selects unsectioned tasks.
	Section string

	FocusMode        *bool
	FutureWindowDays *int
}

// NewTaskQuery returns the default daily view query.
func NewTaskQuery() TaskQuery {
	return TaskQuery{View: "daily"}
}

// ProgressReport summarizes today's completion state.
type ProgressReport struct {
	Day       time.Time
	Total     int
	Completed int
	Overdue   int
}
