package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/repository"
	"github.com/evanmoss/dayboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	due := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	remind := time.Date(2024, 6, 14, 8, 30, 0, 0, time.UTC)
	task := testutil.NewTestTask("water the plants",
		testutil.WithRecurrence(domain.RecurrenceDaily),
		testutil.WithDue(due),
		testutil.WithCategory("home"),
	)
	task.Priority = domain.PriorityHigh
	task.Notes = "back porch too"
	task.RemindAt = &remind

	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.Description, got.Description)
	assert.Equal(t, domain.RecurrenceDaily, got.Recurrence)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, "home", got.Category)
	assert.Equal(t, "back porch too", got.Notes)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, due, *got.DueDate)
	require.NotNil(t, got.RemindAt)
	assert.Equal(t, remind, *got.RemindAt)
	assert.True(t, got.IsTemplate())
}

func TestTaskRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTaskRepo_SeriesRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	tmpl := testutil.NewTestTask("daily walk", testutil.WithRecurrence(domain.RecurrenceDaily))
	require.NoError(t, repo.Create(ctx, tmpl))

	inst := testutil.NewTestTask("daily walk", testutil.WithSeries(tmpl.ID))
	require.NoError(t, repo.Create(ctx, inst))

	gotTmpl, err := repo.GetByID(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tmpl.ID, gotTmpl.Series(), "template's series is its own id")

	gotInst, err := repo.GetByID(ctx, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, tmpl.ID, gotInst.Series())
}

func TestTaskRepo_ListSiblings(t *testing.T) {
	database := testutil.NewTestDB(t)
	sections := repository.NewSQLiteSectionRepo(database)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	section := testutil.NewTestSection("Morning")
	require.NoError(t, sections.Create(ctx, section))

	inSection := testutil.NewTestTask("a", testutil.WithSection(section.ID), testutil.WithOrder(1))
	inSectionFirst := testutil.NewTestTask("b", testutil.WithSection(section.ID), testutil.WithOrder(0))
	loose := testutil.NewTestTask("c")
	for _, task := range []*domain.Task{inSection, inSectionFirst, loose} {
		require.NoError(t, repo.Create(ctx, task))
	}

	siblings, err := repo.ListSiblings(ctx, nil, &section.ID)
	require.NoError(t, err)
	require.Len(t, siblings, 2)
	assert.Equal(t, inSectionFirst.ID, siblings[0].ID, "siblings come back in order")

	unsectioned, err := repo.ListSiblings(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, unsectioned, 1)
	assert.Equal(t, loose.ID, unsectioned[0].ID)
}

func TestTaskRepo_ApplyPositions(t *testing.T) {
	database := testutil.NewTestDB(t)
	sections := repository.NewSQLiteSectionRepo(database)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	section := testutil.NewTestSection("Morning")
	require.NoError(t, sections.Create(ctx, section))

	a := testutil.NewTestTask("a", testutil.WithOrder(0))
	b := testutil.NewTestTask("b", testutil.WithOrder(1))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	err := repo.ApplyPositions(ctx, []repository.TaskPosition{
		{ID: a.ID, Order: 0, SectionID: &section.ID},
		{ID: b.ID, Order: 0},
	})
	require.NoError(t, err)

	gotA, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, gotA.SectionID)
	assert.Equal(t, section.ID, *gotA.SectionID)

	gotB, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotB.Order)
	assert.Nil(t, gotB.SectionID)
}

func TestTaskRepo_ApplyPositions_UnknownTask(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)

	err := repo.ApplyPositions(context.Background(), []repository.TaskPosition{{ID: "ghost", Order: 0}})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTaskRepo_UpdateStatusStamps(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("write report")
	require.NoError(t, repo.Create(ctx, task))

	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	task.SetStatus(domain.TaskCompleted, now)
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, now, *got.CompletedAt)
}

func TestTaskRepo_DeleteCascadesToSubtasks(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	parent := testutil.NewTestTask("parent")
	require.NoError(t, repo.Create(ctx, parent))
	child := testutil.NewTestTask("child", testutil.WithParent(parent.ID))
	require.NoError(t, repo.Create(ctx, child))

	require.NoError(t, repo.Delete(ctx, parent.ID))

	_, err := repo.GetByID(ctx, child.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows, "deleting a parent removes its subtasks")
}
