package ports

import (
	"context"

	"wallet-custody/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepository defines persistence operations for wallet records.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking during passphrase rotation.
type WalletRepository interface {
	Create(ctx context.Context, record *domain.WalletRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletRecord, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.WalletRecord, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletRecord, error)
	// RotateSecrets replaces the entropy blob and passphrase hash atomically
	// and advances updated_at. Returns the number of affected rows.
	RotateSecrets(ctx context.Context, tx pgx.Tx, id uuid.UUID, entropyBlob []byte, passphraseHash string) (int64, error)
	// Delete removes a record. Deleting an absent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
