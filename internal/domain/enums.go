package domain

type TaskStatus string

const (
	TaskTodo      TaskStatus = "todo"
	TaskCompleted TaskStatus = "completed"
	TaskArchived  TaskStatus = "archived"
	TaskSkipped   TaskStatus = "skipped"
)

type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type ViewMode string

const (
	ViewDaily   ViewMode = "daily"
	ViewAll     ViewMode = "all"
	ViewArchive ViewMode = "archive"
)

// ValidStatuses is the canonical set of accepted task status strings.
var ValidStatuses = map[string]bool{
	"todo": true, "completed": true, "archived": true, "skipped": true,
}

// ValidRecurrences is the canonical set of accepted recurrence strings.
var ValidRecurrences = map[string]bool{
	"none": true, "daily": true, "weekly": true, "monthly": true,
}

// ValidPriorities is the canonical set of accepted priority strings.
// The empty string means "no priority".
var ValidPriorities = map[string]bool{
	"": true, "low": true, "medium": true, "high": true,
}
