package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualID_RoundTrip(t *testing.T) {
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	id := VirtualID("t-1", day)
	assert.Equal(t, "virtual:t-1:2024-01-05", id)

	series, parsedDay, ok := ParseVirtualID(id)
	require.True(t, ok)
	assert.Equal(t, "t-1", series)
	assert.Equal(t, day, parsedDay)
}

func TestParseVirtualID_RejectsRealIDs(t *testing.T) {
	for _, id := range []string{"t-1", "", "virtual:", "virtual:t-1", "virtual:t-1:not-a-date"} {
		_, _, ok := ParseVirtualID(id)
		assert.False(t, ok, "id %q must not parse", id)
	}
}

func TestNewVirtual_ClonesAndNormalizes(t *testing.T) {
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	sourceDue := time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC)
	sourceDone := time.Date(2023, 12, 29, 18, 0, 0, 0, time.UTC)
	remind := time.Date(2023, 12, 29, 8, 30, 0, 0, time.UTC)
	section := "s-1"

	source := Task{
		ID:          "i-9",
		Description: "water the plants",
		Notes:       "back porch too",
		Status:      TaskCompleted,
		Recurrence:  RecurrenceDaily,
		SectionID:   &section,
		Order:       2,
		DueDate:     &sourceDue,
		RemindAt:    &remind,
		CreatedAt:   sourceDue,
		CompletedAt: &sourceDone,
	}

	v := NewVirtual(source, "t-1", day)

	assert.Equal(t, "t-1", v.SeriesID)
	assert.Equal(t, day, v.Day)

	got := v.Task
	assert.Equal(t, "virtual:t-1:2024-01-05", got.ID)
	assert.Equal(t, "t-1", got.OriginalTaskID)
	assert.Equal(t, TaskTodo, got.Status)
	assert.Equal(t, day, got.CreatedAt)
	assert.Nil(t, got.CompletedAt)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, day, *got.DueDate, "due date re-anchored to the occurrence day")
	require.NotNil(t, got.RemindAt)
	assert.Equal(t, remind, *got.RemindAt, "reminder carried over unchanged")
	// Placement and content survive the clone.
	assert.Equal(t, "water the plants", got.Description)
	assert.Equal(t, &section, got.SectionID)
	assert.Equal(t, 2, got.Order)
}

func TestNewVirtual_NoDueDateStaysUnset(t *testing.T) {
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	v := NewVirtual(Task{ID: "t-1", Recurrence: RecurrenceWeekly}, "t-1", day)
	assert.Nil(t, v.Task.DueDate)
}
