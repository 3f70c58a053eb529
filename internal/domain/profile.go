package domain

import "time"

// Profile holds the single user's dashboard preferences.
type Profile struct {
	// FocusedTaskID pins one task as the current focus; the next-up
	// selector returns it ahead of section order while it stays actionable.
	FocusedTaskID *string
	// FocusMode restricts the dashboard to top-level tasks in
	// focus-eligible sections.
	FocusMode bool
	// FutureWindowDays hides todo tasks whose relevant date lies more than
	// this many days ahead; -1 disables the window.
	FutureWindowDays int

	CreatedAt time.Time
	UpdatedAt time.Time
}
