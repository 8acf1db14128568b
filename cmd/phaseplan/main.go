package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mvestberg/phaseplan/internal/cli"
	"github.com/mvestberg/phaseplan/internal/config"
	"github.com/mvestberg/phaseplan/internal/db"
	"github.com/mvestberg/phaseplan/internal/repository"
	"github.com/mvestberg/phaseplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: env.SlogLevel(),
	})))

	dbPath, err := env.DBPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	studentRepo := repository.NewSQLiteStudentRepo(database)
	phaseRepo := repository.NewSQLitePhaseRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if env.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Phases:      service.NewPhaseService(studentRepo, phaseRepo, uow, observers...),
		Schedules:   service.NewScheduleService(studentRepo, phaseRepo, taskRepo, uow, observers...),
		Coordinator: service.NewCoordinatorService(studentRepo, phaseRepo, taskRepo, uow, observers...),
		Progress:    service.NewProgressService(phaseRepo, taskRepo, progressRepo, uow, observers...),

		DefaultStudent: env.Student,
	}

	// Detect interactive terminal for wizard and dashboard entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
