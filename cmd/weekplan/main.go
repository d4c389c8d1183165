package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ameliaholt/weekplan/internal/cli"
	"github.com/ameliaholt/weekplan/internal/db"
	"github.com/ameliaholt/weekplan/internal/grid"
	"github.com/ameliaholt/weekplan/internal/repository"
	"github.com/ameliaholt/weekplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.weekplan/weekplan.db
	dbPath := os.Getenv("WEEKPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".weekplan", "weekplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := repository.NewSQLiteScheduleStore(database)

	app := &cli.App{
		Schedule: service.NewScheduleService(store, os.Stderr),
		Geometry: grid.DefaultConfig(),
	}

	// Detect interactive terminal for the bare TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
