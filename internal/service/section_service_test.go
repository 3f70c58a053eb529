package service_test

import (
	"context"
	"testing"

	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/evanmoss/dayboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionService_Create_AppendsDenseOrder(t *testing.T) {
	e := newServiceEnv(t)
	svc := service.NewSectionService(e.uow, e.sections)
	ctx := context.Background()

	morning, err := svc.Create(ctx, "Morning", true)
	require.NoError(t, err)
	evening, err := svc.Create(ctx, "Evening", false)
	require.NoError(t, err)

	assert.Equal(t, 0, morning.Order)
	assert.Equal(t, 1, evening.Order)
	assert.False(t, evening.IncludeInFocus)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Morning", listed[0].Name)
}

func TestSectionService_Create_RequiresName(t *testing.T) {
	e := newServiceEnv(t)
	svc := service.NewSectionService(e.uow, e.sections)

	_, err := svc.Create(context.Background(), "", true)
	var cerr *contract.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contract.ErrInvalidInput, cerr.Code)
}

func TestSectionService_Delete_Unknown(t *testing.T) {
	e := newServiceEnv(t)
	svc := service.NewSectionService(e.uow, e.sections)

	err := svc.Delete(context.Background(), "ghost")
	var cerr *contract.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contract.ErrSectionNotFound, cerr.Code)
}

func TestProfileService_Mutations(t *testing.T) {
	e := newServiceEnv(t)
	svc := service.NewProfileService(e.profiles)
	ctx := context.Background()

	require.NoError(t, svc.SetFocusMode(ctx, true))
	require.NoError(t, svc.SetFutureWindow(ctx, 7))
	pinned := "task-1"
	require.NoError(t, svc.SetFocusedTask(ctx, &pinned))

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, p.FocusMode)
	assert.Equal(t, 7, p.FutureWindowDays)
	require.NotNil(t, p.FocusedTaskID)
	assert.Equal(t, "task-1", *p.FocusedTaskID)

	err = svc.SetFutureWindow(ctx, -2)
	var cerr *contract.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contract.ErrInvalidInput, cerr.Code)
}
