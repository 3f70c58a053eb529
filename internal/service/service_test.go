package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/evanmoss/dayboard/internal/db"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/repository"
	"github.com/evanmoss/dayboard/internal/testutil"
	"github.com/stretchr/testify/require"
)

type serviceEnv struct {
	db       *sql.DB
	uow      db.UnitOfWork
	tasks    repository.TaskRepo
	sections repository.SectionRepo
	offLog   repository.OffLogRepo
	profiles repository.ProfileRepo
}

func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &serviceEnv{
		db:       database,
		uow:      testutil.NewTestUoW(database),
		tasks:    repository.NewSQLiteTaskRepo(database),
		sections: repository.NewSQLiteSectionRepo(database),
		offLog:   repository.NewSQLiteOffLogRepo(database),
		profiles: repository.NewSQLiteProfileRepo(database),
	}
}

func (e *serviceEnv) seedTasks(t *testing.T, tasks ...*domain.Task) {
	t.Helper()
	for _, task := range tasks {
		require.NoError(t, e.tasks.Create(context.Background(), task))
	}
}

func (e *serviceEnv) seedSections(t *testing.T, sections ...*domain.Section) {
	t.Helper()
	for _, s := range sections {
		require.NoError(t, e.sections.Create(context.Background(), s))
	}
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}
