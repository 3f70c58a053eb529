package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/repository"
	"github.com/evanmoss/dayboard/internal/service"
	"github.com/evanmoss/dayboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	taskRepo := repository.NewSQLiteTaskRepo(database)
	sectionRepo := repository.NewSQLiteSectionRepo(database)
	offLogRepo := repository.NewSQLiteOffLogRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Tasks:     service.NewTaskService(uow, taskRepo),
		Sections:  service.NewSectionService(uow, sectionRepo),
		Dashboard: service.NewDashboardService(taskRepo, sectionRepo, offLogRepo, profileRepo),
		Move:      service.NewMoveService(uow),
		DoToday:   service.NewDoTodayService(uow),
		Profile:   service.NewProfileService(profileRepo),
	}
}

// executeCmd runs a cobra command against the App.
func executeCmd(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	return root.Execute()
}

func TestTaskAddAndDone(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	require.NoError(t, executeCmd(t, app, "task", "add", "write report", "--priority", "high"))

	reps, err := app.Dashboard.Tasks(ctx, queryAll())
	require.NoError(t, err)
	require.Len(t, reps, 1)
	task := reps[0].Snapshot()
	assert.Equal(t, "write report", task.Description)
	assert.Equal(t, domain.PriorityHigh, task.Priority)

	require.NoError(t, executeCmd(t, app, "task", "done", task.ID))
	got, err := app.Tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, got.Status)
}

func TestTaskAdd_RejectsBadRecurrence(t *testing.T) {
	app := testApp(t)
	err := executeCmd(t, app, "task", "add", "x", "--recur", "fortnightly")
	assert.Error(t, err)
}

func TestSectionAddAndMove(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	require.NoError(t, executeCmd(t, app, "section", "add", "Morning"))
	sections, err := app.Sections.List(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	require.NoError(t, executeCmd(t, app, "task", "add", "stretch"))
	reps, err := app.Dashboard.Tasks(ctx, queryAll())
	require.NoError(t, err)
	require.Len(t, reps, 1)
	taskID := reps[0].Snapshot().ID

	require.NoError(t, executeCmd(t, app, "move", taskID, "--section", sections[0].ID))
	got, err := app.Tasks.GetByID(ctx, taskID)
	require.NoError(t, err)
	require.NotNil(t, got.SectionID)
	assert.Equal(t, sections[0].ID, *got.SectionID)
}

func TestHideToggles(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	require.NoError(t, executeCmd(t, app, "task", "add", "errand"))
	reps, err := app.Dashboard.Tasks(ctx, queryAll())
	require.NoError(t, err)
	taskID := reps[0].Snapshot().ID

	// The task list keeps hidden tasks visible; next-up excludes them.
	require.NoError(t, executeCmd(t, app, "hide", taskID))
	next, err := app.Dashboard.NextUp(ctx, queryDaily())
	require.NoError(t, err)
	assert.Nil(t, next)

	require.NoError(t, executeCmd(t, app, "hide", taskID))
	next, err = app.Dashboard.NextUp(ctx, queryDaily())
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, taskID, next.Snapshot().ID)
}

func TestFocusCommands(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	require.NoError(t, executeCmd(t, app, "focus", "on"))
	require.NoError(t, executeCmd(t, app, "focus", "window", "5"))

	p, err := app.Profile.Get(ctx)
	require.NoError(t, err)
	assert.True(t, p.FocusMode)
	assert.Equal(t, 5, p.FutureWindowDays)

	require.NoError(t, executeCmd(t, app, "focus", "off"))
	p, err = app.Profile.Get(ctx)
	require.NoError(t, err)
	assert.False(t, p.FocusMode)
}

func queryAll() contract.TaskQuery {
	q := contract.NewTaskQuery()
	q.View = "all"
	return q
}

func queryDaily() contract.TaskQuery {
	return contract.NewTaskQuery()
}

func TestUnknownTaskFails(t *testing.T) {
	app := testApp(t)
	err := executeCmd(t, app, "task", "done", "ghost")
	assert.Error(t, err)
}
