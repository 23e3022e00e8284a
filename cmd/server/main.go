// Package main implements the entry point for the Savory API server, a
// REST backend for user accounts, todos, delivery addresses and restaurant
// menu management.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/savori/savory-api/internal/config"
	"github.com/savori/savory-api/internal/platform/logger"
)

func main() {
	migrate := flag.String("migrate", "", "run database migrations before serving (up or down)")
	flag.Parse()

	if err := run(*migrate); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, connects to the database, optionally applies
// migrations, and serves HTTP until shutdown.
func run(migrate string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}

	if migrate != "" {
		if err := runMigrations(db, appLogger, migrate); err != nil {
			_ = db.Close()
			return err
		}
		appLogger.Info("migrations applied", "direction", migrate)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		_ = db.Close()
		return err
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
