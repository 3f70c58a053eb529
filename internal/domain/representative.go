package domain

import (
	"fmt"
	"strings"
	"time"
)

// Representative is the single task surfaced for a series on one calendar
// day: either a persisted row or a synthesized occurrence that has not been
// stored yet. The two cases are a sealed sum; consumers type-switch
// exhaustively instead of sniffing id prefixes.
type Representative interface {
	// Snapshot returns the task fields as they should be displayed.
	Snapshot() Task
	isRepresentative()
}

// Real wraps a persisted task row.
type Real struct {
	Task Task
}

func (Real) isRepresentative() {}

func (r Real) Snapshot() Task { return r.Task }

// Virtual is a computed occurrence of a recurring series for one day. It is
// immutable as data: any mutation must realize it into a persisted row
// first.
type Virtual struct {
	SeriesID string
	Day      time.Time
	// Task holds the synthesized occurrence; its ID is VirtualID(SeriesID, Day).
	Task Task
}

func (Virtual) isRepresentative() {}

func (v Virtual) Snapshot() Task { return v.Task }

// NewVirtual synthesizes today's occurrence of a series by cloning source
// (the most recent real instance, or the template when none exists).
func NewVirtual(source Task, seriesID string, day time.Time) Virtual {
	day = DayOf(day)

	t := source
	t.ID = VirtualID(seriesID, day)
	t.OriginalTaskID = seriesID
	t.Status = TaskTodo
	t.CreatedAt = day
	t.UpdatedAt = day
	t.CompletedAt = nil
	t.ArchivedAt = nil
	// The due date is re-anchored to the occurrence day only when the source
	// carried one; a series without due dates stays that way.
	if source.DueDate != nil {
		due := day
		t.DueDate = &due
	}

	return Virtual{SeriesID: seriesID, Day: day, Task: t}
}

const virtualIDPrefix = "virtual:"

// VirtualID builds the synthetic display id for a virtual occurrence,
// e.g. "virtual:3f1a…:2024-01-05".
func VirtualID(seriesID string, day time.Time) string {
	return fmt.Sprintf("%s%s:%s", virtualIDPrefix, seriesID, DayOf(day).Format("2006-01-02"))
}

// ParseVirtualID splits a synthetic id back into its series and day. It is
// the inverse of VirtualID and exists only for the public intent surface,
// where a virtual id is the caller's handle on a not-yet-realized task.
func ParseVirtualID(id string) (seriesID string, day time.Time, ok bool) {
	rest, found := strings.CutPrefix(id, virtualIDPrefix)
	if !found {
		return "", time.Time{}, false
	}
	i := strings.LastIndex(rest, ":")
	if i <= 0 {
		return "", time.Time{}, false
	}
	day, err := time.Parse("2006-01-02", rest[i+1:])
	if err != nil {
		return "", time.Time{}, false
	}
	return rest[:i], day, true
}
