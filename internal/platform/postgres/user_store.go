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

// PostgresUserStore implements the store.UserStore interface using a
// PostgreSQL database.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Verify PostgresUserStore implements store.UserStore at compile time.
var _ store.UserStore = (*PostgresUserStore)(nil)

// NewPostgresUserStore creates a new PostgresUserStore.
func NewPostgresUserStore(db store.DBTX, log *slog.Logger) *PostgresUserStore {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: log.With(slog.String("component", "user_store")),
	}
}

// WithTx returns a new UserStore bound to the given transaction.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create saves a new user. The user's password must already be hashed by
// the caller; plaintext never reaches this layer.
// Returns store.ErrUserExists when the username or email is taken.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO users (id, username, email, first_name, last_name, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.DebugContext(ctx, "user already exists",
				slog.String("username", user.Username))
			return fmt.Errorf("%w: %v", store.ErrUserExists, err)
		}
		log.ErrorContext(ctx, "failed to insert user", slog.Any("error", err))
		return MapError(err)
	}

	log.InfoContext(ctx, "user created", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID retrieves a user by their unique ID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, first_name, last_name, hashed_password, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	user, err := scanUser(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, fmt.Errorf("%w: id %s", store.ErrUserNotFound, id)
		}
		return nil, MapError(err)
	}
	return user, nil
}

// GetByEmail retrieves a user by their email address.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, first_name, last_name, hashed_password, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)

	user, err := scanUser(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, fmt.Errorf("%w: email %s", store.ErrUserNotFound, email)
		}
		return nil, MapError(err)
	}
	return user, nil
}

// List retrieves a page of users plus the total count matching the filters.
func (s *PostgresUserStore) List(ctx context.Context, query store.ListQuery) ([]*domain.User, int64, error) {
	whereSQL, tailSQL, whereArgs, pageArgs := buildListClauses(query)

	var total int64
	countSQL := "SELECT COUNT(*) FROM users" + whereSQL
	if err := s.db.QueryRowContext(ctx, countSQL, whereArgs...).Scan(&total); err != nil {
		return nil, 0, MapError(err)
	}

	pageSQL := `
		SELECT id, username, email, first_name, last_name, hashed_password, created_at, updated_at
		FROM users` + whereSQL + tailSQL
	rows, err := s.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, MapError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return users, total, nil
}

// Delete removes a user by their ID. Rows in owned tables cascade via
// foreign key constraints.
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.ErrorContext(ctx, "failed to delete user", slog.Any("error", err))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))
	return nil
}

// scanner abstracts sql.Row and sql.Rows so scan helpers serve both the
// single-row and list paths.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
