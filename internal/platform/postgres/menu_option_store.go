package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/platform/logger"
	"github.com/savori/savory-api/internal/store"
)

// PostgresMenuOptionStore implements the store.MenuOptionStore interface
// using a PostgreSQL database.
type PostgresMenuOptionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.MenuOptionStore = (*PostgresMenuOptionStore)(nil)

// NewPostgresMenuOptionStore creates a new PostgresMenuOptionStore.
func NewPostgresMenuOptionStore(db store.DBTX, log *slog.Logger) *PostgresMenuOptionStore {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresMenuOptionStore{
		db:     db,
		logger: log.With(slog.String("component", "menu_option_store")),
	}
}

// WithTx returns a new MenuOptionStore bound to the given transaction.
func (s *PostgresMenuOptionStore) WithTx(tx *sql.Tx) store.MenuOptionStore {
	return &PostgresMenuOptionStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create saves a new menu option. A foreign key violation on the menu
// reference surfaces as store.ErrInvalidEntity.
func (s *PostgresMenuOptionStore) Create(ctx context.Context, option *domain.MenuOption) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := option.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO menu_options (id, user_id, menu_id, name, max_selection, required, multiple_selection, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		option.ID,
		option.UserID,
		option.MenuID,
		option.Name,
		option.MaxSelection,
		option.Required,
		option.MultipleSelection,
		option.CreatedAt,
		option.UpdatedAt,
	)
	if err != nil {
		log.ErrorContext(ctx, "failed to insert menu option", slog.Any("error", err))
		return MapError(err)
	}

	log.DebugContext(ctx, "menu option created",
		slog.String("option_id", option.ID.String()),
		slog.String("menu_id", option.MenuID.String()))
	return nil
}
