package contract

// MoveRequest describes a drag of one task to a new position. TaskID may be
// a virtual occurrence id, in which case the task is realized before the
// reorder, as one atomic operation.
type MoveRequest struct {
	TaskID string
	// Destination sibling group.
	ParentID  *string
	SectionID *string
	// OverID is the sibling to insert relative to; nil appends.
	OverID *string
	// DraggingDown inserts after OverID instead of before it.
	DraggingDown bool
}

// MoveResult reports the applied move.
type MoveResult struct {
	// TaskID is the persisted id after the move; it differs from the
	// request when a virtual occurrence was realized.
	TaskID string
	// Realized reports whether a virtual occurrence became a real row.
	Realized bool
	// Updated is the number of position assignments applied.
	Updated int
}
