package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// migrationsDir is the path to the goose SQL migration files, relative to
// the working directory the server is launched from.
const migrationsDir = "migrations"

// runMigrations applies goose migrations in the given direction ("up" or
// "down"). Called when the server starts with the -migrate flag.
func runMigrations(db *sql.DB, log *slog.Logger, direction string) error {
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	switch direction {
	case "up":
		if err := goose.Up(db, migrationsDir); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	case "down":
		if err := goose.Down(db, migrationsDir); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
	default:
		return fmt.Errorf("unknown migration direction %q (want up or down)", direction)
	}

	return nil
}

// gooseLogger adapts goose's logger interface to slog.
type gooseLogger struct {
	log *slog.Logger
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.log.Info(fmt.Sprintf(format, v...))
}
