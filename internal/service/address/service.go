// Package address implements the create path for delivery addresses,
// which is the one multi-step write in the API.
package address

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/savori/savory-api/internal/domain"
	"github.com/savori/savory-api/internal/platform/logger"
	"github.com/savori/savory-api/internal/store"
)

// CurrentAddressCreator creates a new address as the owner's current one.
type CurrentAddressCreator interface {
	// CreateCurrent demotes the owner's existing current address (if any)
	// and inserts the new address with the current flag set, within one
	// transaction. The single-current-per-user invariant holds afterwards.
	CreateCurrent(ctx context.Context, address *domain.Address) error
}

// Service coordinates the demote-then-insert sequence for addresses.
type Service struct {
	addresses store.AddressStore
	logger    *slog.Logger

	// runTx executes fn inside a database transaction. Tests replace it
	// to run the sequence without a live database.
	runTx func(ctx context.Context, fn store.TxFn) error
}

// Ensure Service implements CurrentAddressCreator
var _ CurrentAddressCreator = (*Service)(nil)

// NewService creates a new address Service.
func NewService(db *sql.DB, addresses store.AddressStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		addresses: addresses,
		logger:    log.With(slog.String("component", "address_service")),
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
	}
}

// CreateCurrent implements CurrentAddressCreator. Both writes run inside a
// single transaction so a failure between the demote and the insert cannot
// leave the owner without a current address.
func (s *Service) CreateCurrent(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	return s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.addresses.WithTx(tx)

		existing, err := txStore.FindCurrent(ctx, address.UserID)
		if err != nil && !errors.Is(err, store.ErrAddressNotFound) {
			return err
		}

		if existing != nil {
			if err := txStore.ClearCurrent(ctx, existing.ID); err != nil {
				return err
			}
			log.Debug("demoted previous current address",
				slog.String("address_id", existing.ID.String()),
				slog.String("user_id", address.UserID.String()))
		}

		return txStore.Create(ctx, address)
	})
}
