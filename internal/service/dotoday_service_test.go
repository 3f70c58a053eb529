package service_test

import (
	"context"
	"testing"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/service"
	"github.com/evanmoss/dayboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoTodayService_Toggle_RoundTrips(t *testing.T) {
	e := newServiceEnv(t)
	task := testutil.NewTestTask("errand")
	e.seedTasks(t, task)

	now := day(t, "2024-05-01")
	q := contract.NewTaskQuery()
	q.Now = &now

	svc := service.NewDoTodayService(e.uow)
	require.NoError(t, svc.Toggle(context.Background(), task.ID, q))

	off, err := e.offLog.ListDay(context.Background(), now)
	require.NoError(t, err)
	assert.True(t, off[task.ID])

	require.NoError(t, svc.Toggle(context.Background(), task.ID, q))
	off, err = e.offLog.ListDay(context.Background(), now)
	require.NoError(t, err)
	assert.Empty(t, off)
}

func TestDoTodayService_Toggle_RecurringRejected(t *testing.T) {
	e := newServiceEnv(t)
	template := testutil.NewTestTask("standup",
		testutil.WithRecurrence(domain.RecurrenceDaily))
	e.seedTasks(t, template)

	q := contract.NewTaskQuery()
	svc := service.NewDoTodayService(e.uow)

	err := svc.Toggle(context.Background(), template.ID, q)
	var cerr *contract.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contract.ErrNotExcludable, cerr.Code)

	err = svc.Toggle(context.Background(), domain.VirtualID(template.ID, day(t, "2024-05-01")), q)
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contract.ErrNotExcludable, cerr.Code)
}

func TestDoTodayService_ToggleAll_MajorityFlips(t *testing.T) {
	e := newServiceEnv(t)
	now := day(t, "2024-05-01")
	a := testutil.NewTestTask("a", testutil.WithCreatedAt(now))
	b := testutil.NewTestTask("b", testutil.WithCreatedAt(now))
	c := testutil.NewTestTask("c", testutil.WithCreatedAt(now))
	e.seedTasks(t, a, b, c)

	q := contract.NewTaskQuery()
	q.Now = &now
	svc := service.NewDoTodayService(e.uow)

	// All three on; majority on flips everything off.
	require.NoError(t, svc.ToggleAll(context.Background(), q))
	off, err := e.offLog.ListDay(context.Background(), now)
	require.NoError(t, err)
	assert.Len(t, off, 3)

	// All off; everything comes back on, including tasks the daily view no
	// longer shows.
	require.NoError(t, svc.ToggleAll(context.Background(), q))
	off, err = e.offLog.ListDay(context.Background(), now)
	require.NoError(t, err)
	assert.Empty(t, off)
}

func TestDoTodayService_ToggleAll_TieTurnsAllOn(t *testing.T) {
	e := newServiceEnv(t)
	now := day(t, "2024-05-01")
	a := testutil.NewTestTask("a", testutil.WithCreatedAt(now))
	b := testutil.NewTestTask("b", testutil.WithCreatedAt(now))
	e.seedTasks(t, a, b)

	require.NoError(t, e.offLog.ApplyBatch(context.Background(), now, []string{a.ID}, nil))

	q := contract.NewTaskQuery()
	q.Now = &now
	svc := service.NewDoTodayService(e.uow)
	require.NoError(t, svc.ToggleAll(context.Background(), q))

	off, err := e.offLog.ListDay(context.Background(), now)
	require.NoError(t, err)
	assert.Empty(t, off, "a 1-of-2 tie resolves to all on")
}
