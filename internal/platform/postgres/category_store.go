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

// PostgresCategoryStore implements the store.CategoryStore interface using
// a PostgreSQL database.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// NewPostgresCategoryStore creates a new PostgresCategoryStore.
func NewPostgresCategoryStore(db store.DBTX, log *slog.Logger) *PostgresCategoryStore {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresCategoryStore{
		db:     db,
		logger: log.With(slog.String("component", "category_store")),
	}
}

// WithTx returns a new CategoryStore bound to the given transaction.
func (s *PostgresCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &PostgresCategoryStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create saves a new category.
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO categories (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		category.ID,
		category.UserID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		log.ErrorContext(ctx, "failed to insert category", slog.Any("error", err))
		return MapError(err)
	}

	log.DebugContext(ctx, "category created",
		slog.String("category_id", category.ID.String()))
	return nil
}

// GetByID retrieves a category by its unique ID.
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM categories
		WHERE id = $1
	`, id)

	category, err := scanCategory(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, fmt.Errorf("%w: id %s", store.ErrCategoryNotFound, id)
		}
		return nil, MapError(err)
	}
	return category, nil
}

// List retrieves a page of categories plus the total count matching the
// filters.
func (s *PostgresCategoryStore) List(ctx context.Context, query store.ListQuery) ([]*domain.Category, int64, error) {
	whereSQL, tailSQL, whereArgs, pageArgs := buildListClauses(query)

	var total int64
	countSQL := "SELECT COUNT(*) FROM categories" + whereSQL
	if err := s.db.QueryRowContext(ctx, countSQL, whereArgs...).Scan(&total); err != nil {
		return nil, 0, MapError(err)
	}

	pageSQL := `
		SELECT id, user_id, name, created_at, updated_at
		FROM categories` + whereSQL + tailSQL
	rows, err := s.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, 0, MapError(err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return categories, total, nil
}

// Update persists the full state of an existing category.
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE categories
		SET name = $2, updated_at = $3
		WHERE id = $1
	`,
		category.ID,
		category.Name,
		category.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// Delete removes a category by its ID. Menus referencing the category are
// removed by the cascading foreign key.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

func scanCategory(row scanner) (*domain.Category, error) {
	var category domain.Category
	err := row.Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}
