package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func plainStyles(t *testing.T) {
	t.Helper()
	SetPlain()
}

func TestRenderTaskList_GroupsBySection(t *testing.T) {
	plainStyles(t)
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	sectionID := "s-1"
	reps := []domain.Representative{
		domain.Real{Task: domain.Task{ID: "t-1", Description: "loose end", Status: domain.TaskTodo}},
		domain.Real{Task: domain.Task{ID: "t-2", Description: "review draft", Status: domain.TaskTodo, SectionID: &sectionID}},
	}
	sections := []domain.Section{{ID: sectionID, Name: "Morning"}}

	out := RenderTaskList(reps, sections, now)
	assert.Contains(t, out, "TASKS")
	assert.Contains(t, out, "MORNING")
	assert.Contains(t, out, "loose end")
	assert.Contains(t, out, "review draft")
	assert.Less(t, strings.Index(out, "loose end"), strings.Index(out, "MORNING"),
		"unsectioned tasks render before sections")
}

func TestRenderTaskList_IndentsSubtasks(t *testing.T) {
	plainStyles(t)
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	parent := "t-parent"
	reps := []domain.Representative{
		domain.Real{Task: domain.Task{ID: "t-child", Description: "child", ParentID: &parent, Status: domain.TaskTodo}},
		domain.Real{Task: domain.Task{ID: parent, Description: "parent", Status: domain.TaskTodo}},
	}

	out := RenderTaskList(reps, nil, now)
	assert.Contains(t, out, "└ child")
	assert.Less(t, strings.Index(out, "parent"), strings.Index(out, "child"))
}

func TestRenderTaskList_Empty(t *testing.T) {
	plainStyles(t)
	out := RenderTaskList(nil, nil, time.Now())
	assert.Contains(t, out, "Nothing to show")
}

func TestRenderProgressReport(t *testing.T) {
	plainStyles(t)
	report := &contract.ProgressReport{
		Day:       time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Total:     4,
		Completed: 2,
		Overdue:   1,
	}

	out := RenderProgressReport(report)
	assert.Contains(t, out, "2/4 done")
	assert.Contains(t, out, "1 overdue")
	assert.Contains(t, out, "50%")
}

func TestRenderNext_EmptyState(t *testing.T) {
	plainStyles(t)
	out := RenderNext(nil, time.Now())
	assert.Contains(t, out, "All clear")
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Today", RelativeDateFrom(now, now))
	assert.Equal(t, "Tomorrow", RelativeDateFrom(now.AddDate(0, 0, 1), now))
	assert.Equal(t, "Yesterday", RelativeDateFrom(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "In 5d", RelativeDateFrom(now.AddDate(0, 0, 5), now))
	assert.Equal(t, "3d ago", RelativeDateFrom(now.AddDate(0, 0, -3), now))
}
