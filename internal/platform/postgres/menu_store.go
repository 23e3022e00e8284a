package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/platform/logger"
	"github.com/savori/savory-api/internal/store"
)

// PostgresMenuStore implements the store.MenuStore interface using a
// PostgreSQL database.
type PostgresMenuStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.MenuStore = (*PostgresMenuStore)(nil)

// NewPostgresMenuStore creates a new PostgresMenuStore.
func NewPostgresMenuStore(db store.DBTX, log *slog.Logger) *PostgresMenuStore {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresMenuStore{
		db:     db,
		logger: log.With(slog.String("component", "menu_store")),
	}
}

// WithTx returns a new MenuStore bound to the given transaction.
func (s *PostgresMenuStore) WithTx(tx *sql.Tx) store.MenuStore {
	return &PostgresMenuStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create saves a new menu. A foreign key violation on the category
// reference surfaces as store.ErrInvalidEntity.
func (s *PostgresMenuStore) Create(ctx context.Context, menu *domain.Menu) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := menu.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO menus (id, user_id, category_id, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		menu.ID,
		menu.UserID,
		menu.CategoryID,
		menu.Name,
		menu.Description,
		menu.Price,
		menu.CreatedAt,
		menu.UpdatedAt,
	)
	if err != nil {
		log.ErrorContext(ctx, "failed to insert menu", slog.Any("error", err))
		return MapError(err)
	}

	log.DebugContext(ctx, "menu created", slog.String("menu_id", menu.ID.String()))
	return nil
}

// GetByID retrieves a menu by its unique ID.
func (s *PostgresMenuStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Menu, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, category_id, name, description, price, created_at, updated_at
		FROM menus
		WHERE id = $1
	`, id)

	menu, err := scanMenu(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, fmt.Errorf("%w: id %s", store.ErrMenuNotFound, id)
		}
		return nil, MapError(err)
	}
	return menu, nil
}

// List retrieves a page of menus plus the total count matching the filters.
func (s *PostgresMenuStore) List(ctx context.Context, query store.ListQuery) ([]*domain.Menu, int64, error) {
	whereSQL, tailSQL, whereArgs, pageArgs := buildListClauses(query)

	var total int64
	countSQL := "SELECT COUNT(*) FROM menus" + whereSQL
	if err := s.db.QueryRowContext(ctx, countSQL, whereArgs...).Scan(&total); err != nil {
		return nil, 0, MapError(err)
	}

	pageSQL := `
		SELECT id, user_id, category_id, name, description, price, created_at, updated_at
		FROM menus` + whereSQL + tailSQL
	rows, err := s.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	menus := make([]*domain.Menu, 0)
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, 0, MapError(err)
		}
		menus = append(menus, menu)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return menus, total, nil
}

// Update persists the full state of an existing menu.
func (s *PostgresMenuStore) Update(ctx context.Context, menu *domain.Menu) error {
	if err := menu.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE menus
		SET category_id = $2, name = $3, description = $4, price = $5, updated_at = $6
		WHERE id = $1
	`,
		menu.ID,
		menu.CategoryID,
		menu.Name,
		menu.Description,
		menu.Price,
		menu.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrMenuNotFound)
}

// Delete removes a menu by its ID. Options attached to the menu are
// removed by the cascading foreign key.
func (s *PostgresMenuStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrMenuNotFound)
}

func scanMenu(row scanner) (*domain.Menu, error) {
	var menu domain.Menu
	err := row.Scan(
		&menu.ID,
		&menu.UserID,
		&menu.CategoryID,
		&menu.Name,
		&menu.Description,
		&menu.Price,
		&menu.CreatedAt,
		&menu.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &menu, nil
}
