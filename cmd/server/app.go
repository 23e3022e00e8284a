package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/savori/savory-api/internal/config"
	"github.com/savori/savory-api/internal/platform/postgres"
	"github.com/savori/savory-api/internal/service/address"
	"github.com/savori/savory-api/internal/service/auth"
	"github.com/savori/savory-api/internal/store"
)

// application holds the initialized dependencies shared across the server:
// configuration, logger, database handle, stores and services. Handlers are
// constructed from it when the router is built.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore       store.UserStore
	todoStore       store.TodoStore
	addressStore    store.AddressStore
	categoryStore   store.CategoryStore
	menuStore       store.MenuStore
	menuOptionStore store.MenuOptionStore

	jwtService     auth.JWTService
	passwordHasher *auth.BcryptHasher
	addressService *address.Service
}

// newApplication wires up stores and services on top of an established
// database connection.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	addressStore := postgres.NewPostgresAddressStore(db, log)

	return &application{
		config: cfg,
		logger: log,
		db:     db,

		userStore:       postgres.NewPostgresUserStore(db, log),
		todoStore:       postgres.NewPostgresTodoStore(db, log),
		addressStore:    addressStore,
		categoryStore:   postgres.NewPostgresCategoryStore(db, log),
		menuStore:       postgres.NewPostgresMenuStore(db, log),
		menuOptionStore: postgres.NewPostgresMenuOptionStore(db, log),

		jwtService:     jwtService,
		passwordHasher: auth.NewBcryptHasher(0),
		addressService: address.NewService(db, addressStore, log),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
