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

// PostgresTodoStore implements the store.TodoStore interface using a
// PostgreSQL database.
type PostgresTodoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.TodoStore = (*PostgresTodoStore)(nil)

// NewPostgresTodoStore creates a new PostgresTodoStore.
func NewPostgresTodoStore(db store.DBTX, log *slog.Logger) *PostgresTodoStore {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresTodoStore{
		db:     db,
		logger: log.With(slog.String("component", "todo_store")),
	}
}

// WithTx returns a new TodoStore bound to the given transaction.
func (s *PostgresTodoStore) WithTx(tx *sql.Tx) store.TodoStore {
	return &PostgresTodoStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create saves a new todo.
func (s *PostgresTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := todo.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO todos (id, user_id, name, description, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		todo.ID,
		todo.UserID,
		todo.Name,
		todo.Description,
		todo.Completed,
		todo.CreatedAt,
		todo.UpdatedAt,
	)
	if err != nil {
		log.ErrorContext(ctx, "failed to insert todo", slog.Any("error", err))
		return MapError(err)
	}

	log.DebugContext(ctx, "todo created",
		slog.String("todo_id", todo.ID.String()),
		slog.String("user_id", todo.UserID.String()))
	return nil
}

// GetByID retrieves a todo by its unique ID.
func (s *PostgresTodoStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Todo, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, description, completed, created_at, updated_at
		FROM todos
		WHERE id = $1
	`, id)

	todo, err := scanTodo(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, fmt.Errorf("%w: id %s", store.ErrTodoNotFound, id)
		}
		return nil, MapError(err)
	}
	return todo, nil
}

// List retrieves a page of todos plus the total count matching the filters.
func (s *PostgresTodoStore) List(ctx context.Context, query store.ListQuery) ([]*domain.Todo, int64, error) {
	whereSQL, tailSQL, whereArgs, pageArgs := buildListClauses(query)

	var total int64
	countSQL := "SELECT COUNT(*) FROM todos" + whereSQL
	if err := s.db.QueryRowContext(ctx, countSQL, whereArgs...).Scan(&total); err != nil {
		return nil, 0, MapError(err)
	}

	pageSQL := `
		SELECT id, user_id, name, description, completed, created_at, updated_at
		FROM todos` + whereSQL + tailSQL
	rows, err := s.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	todos := make([]*domain.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, 0, MapError(err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return todos, total, nil
}

// Update persists the full state of an existing todo.
func (s *PostgresTodoStore) Update(ctx context.Context, todo *domain.Todo) error {
	if err := todo.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE todos
		SET name = $2, description = $3, completed = $4, updated_at = $5
		WHERE id = $1
	`,
		todo.ID,
		todo.Name,
		todo.Description,
		todo.Completed,
		todo.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTodoNotFound)
}

// Delete removes a todo by its ID.
func (s *PostgresTodoStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTodoNotFound)
}

func scanTodo(row scanner) (*domain.Todo, error) {
	var todo domain.Todo
	err := row.Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Name,
		&todo.Description,
		&todo.Completed,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}
