package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/evanmoss/dayboard/internal/cli"
	"github.com/evanmoss/dayboard/internal/cli/formatter"
	"github.com/evanmoss/dayboard/internal/config"
	"github.com/evanmoss/dayboard/internal/db"
	"github.com/evanmoss/dayboard/internal/domain"
	"github.com/evanmoss/dayboard/internal/repository"
	"github.com/evanmoss/dayboard/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env can supply DAYBOARD_* overrides during development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if cfg.PlainOutput || !isatty.IsTerminal(os.Stdout.Fd()) {
		formatter.SetPlain()
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)
	sectionRepo := repository.NewSQLiteSectionRepo(database)
	offLogRepo := repository.NewSQLiteOffLogRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// First run: the config file supplies the profile defaults.
	now := time.Now().UTC()
	seed := &domain.Profile{
		FocusMode:        cfg.FocusMode,
		FutureWindowDays: cfg.FutureWindowDays,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := profileRepo.Seed(context.Background(), seed); err != nil {
		return err
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("DAYBOARD_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Tasks:     service.NewTaskService(uow, taskRepo, observer),
		Sections:  service.NewSectionService(uow, sectionRepo, observer),
		Dashboard: service.NewDashboardService(taskRepo, sectionRepo, offLogRepo, profileRepo),
		Move:      service.NewMoveService(uow, observer),
		DoToday:   service.NewDoTodayService(uow, observer),
		Profile:   service.NewProfileService(profileRepo, observer),
	}

	return cli.NewRootCmd(app).Execute()
}
