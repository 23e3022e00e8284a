package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/platform/logger"
	"github.com/savori/savory-api/internal/store"
)

// PostgresAddressStore implements the store.AddressStore interface using a
// PostgreSQL database.
type PostgresAddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.AddressStore = (*PostgresAddressStore)(nil)

// NewPostgresAddressStore creates a new PostgresAddressStore.
func NewPostgresAddressStore(db store.DBTX, log *slog.Logger) *PostgresAddressStore {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresAddressStore{
		db:     db,
		logger: log.With(slog.String("component", "address_store")),
	}
}

// WithTx returns a new AddressStore bound to the given transaction.
func (s *PostgresAddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	return &PostgresAddressStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create saves a new address. Callers that need the single-current
// invariant wrap Create together with ClearCurrent in one transaction.
func (s *PostgresAddressStore) Create(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO addresses (id, user_id, street, city, state, zip, country, current, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		address.ID,
		address.UserID,
		address.Street,
		address.City,
		address.State,
		address.Zip,
		address.Country,
		address.Current,
		address.CreatedAt,
		address.UpdatedAt,
	)
	if err != nil {
		log.ErrorContext(ctx, "failed to insert address", slog.Any("error", err))
		return MapError(err)
	}

	log.DebugContext(ctx, "address created",
		slog.String("address_id", address.ID.String()),
		slog.String("user_id", address.UserID.String()))
	return nil
}

// GetByID retrieves an address by its unique ID.
func (s *PostgresAddressStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, street, city, state, zip, country, current, created_at, updated_at
		FROM addresses
		WHERE id = $1
	`, id)

	address, err := scanAddress(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, fmt.Errorf("%w: id %s", store.ErrAddressNotFound, id)
		}
		return nil, MapError(err)
	}
	return address, nil
}

// FindCurrent retrieves the owner's address with the current flag set.
func (s *PostgresAddressStore) FindCurrent(ctx context.Context, ownerID uuid.UUID) (*domain.Address, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, street, city, state, zip, country, current, created_at, updated_at
		FROM addresses
		WHERE user_id = $1 AND current = TRUE
	`, ownerID)

	address, err := scanAddress(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, fmt.Errorf("%w: no current address for user %s", store.ErrAddressNotFound, ownerID)
		}
		return nil, MapError(err)
	}
	return address, nil
}

// ClearCurrent unsets the current flag on the given address.
func (s *PostgresAddressStore) ClearCurrent(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE addresses
		SET current = FALSE, updated_at = $2
		WHERE id = $1
	`, id, time.Now().UTC())
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrAddressNotFound)
}

// List retrieves a page of addresses plus the total count matching the
// filters.
func (s *PostgresAddressStore) List(ctx context.Context, query store.ListQuery) ([]*domain.Address, int64, error) {
	whereSQL, tailSQL, whereArgs, pageArgs := buildListClauses(query)

	var total int64
	countSQL := "SELECT COUNT(*) FROM addresses" + whereSQL
	if err := s.db.QueryRowContext(ctx, countSQL, whereArgs...).Scan(&total); err != nil {
		return nil, 0, MapError(err)
	}

	pageSQL := `
		SELECT id, user_id, street, city, state, zip, country, current, created_at, updated_at
		FROM addresses` + whereSQL + tailSQL
	rows, err := s.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	addresses := make([]*domain.Address, 0)
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, 0, MapError(err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return addresses, total, nil
}

// Update persists the full state of an existing address. The current flag
// is deliberately not updatable here; it changes only through the
// demote-then-insert create path.
func (s *PostgresAddressStore) Update(ctx context.Context, address *domain.Address) error {
	if err := address.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE addresses
		SET street = $2, city = $3, state = $4, zip = $5, country = $6, updated_at = $7
		WHERE id = $1
	`,
		address.ID,
		address.Street,
		address.City,
		address.State,
		address.Zip,
		address.Country,
		address.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrAddressNotFound)
}

// Delete removes an address by its ID.
func (s *PostgresAddressStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrAddressNotFound)
}

func scanAddress(row scanner) (*domain.Address, error) {
	var address domain.Address
	err := row.Scan(
		&address.ID,
		&address.UserID,
		&address.Street,
		&address.City,
		&address.State,
		&address.Zip,
		&address.Country,
		&address.Current,
		&address.CreatedAt,
		&address.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &address, nil
}
