package domain

import "time"

type Section struct {
	ID   string
	Name string
	// Order positions the section in the dashboard; dense 0..n-1.
	Order int
	// IncludeInFocus marks the section's tasks as eligible for focus mode.
	IncludeInFocus bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
