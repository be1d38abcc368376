package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-custody/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository on the wallet_records table.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet record. A unique index on owner_id enforces
// one wallet per owner; violations surface as *pgconn.PgError 23505.
func (r *WalletRepo) Create(ctx context.Context, rec *domain.WalletRecord) error {
	query := `INSERT INTO wallet_records (id, owner_id, entropy_blob, passphrase_hash, seed_fingerprint, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.OwnerID, rec.EntropyBlob, rec.PassphraseHash,
		rec.SeedFingerprint, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet record: %w", err)
	}
	return nil
}

// GetByID fetches a wallet record by its UUID (without locking).
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletRecord, error) {
	query := `SELECT id, owner_id, entropy_blob, passphrase_hash, seed_fingerprint, created_at, updated_at
		FROM wallet_records WHERE id = $1`

	rec := &domain.WalletRecord{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.OwnerID, &rec.EntropyBlob, &rec.PassphraseHash,
		&rec.SeedFingerprint, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet record by id: %w", err)
	}
	return rec, nil
}

// GetByOwnerID fetches a wallet record by its owner identity (non-locking read).
func (r *WalletRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.WalletRecord, error) {
	query := `SELECT id, owner_id, entropy_blob, passphrase_hash, seed_fingerprint, created_at, updated_at
		FROM wallet_records WHERE owner_id = $1`

	rec := &domain.WalletRecord{}
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&rec.ID, &rec.OwnerID, &rec.EntropyBlob, &rec.PassphraseHash,
		&rec.SeedFingerprint, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet record by owner: %w", err)
	}
	return rec, nil
}

// GetByIDForUpdate fetches a wallet record by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletRecord, error) {
	query := `SELECT id, owner_id, entropy_blob, passphrase_hash, seed_fingerprint, created_at, updated_at
		FROM wallet_records WHERE id = $1 FOR UPDATE`

	rec := &domain.WalletRecord{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.OwnerID, &rec.EntropyBlob, &rec.PassphraseHash,
		&rec.SeedFingerprint, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet record for update: %w", err)
	}
	return rec, nil
}

// RotateSecrets replaces the entropy blob and passphrase hash atomically
// within a transaction. updated_at comes from the application clock, the
// same source that stamps created_at on insert, so the two stay comparable.
func (r *WalletRepo) RotateSecrets(ctx context.Context, tx pgx.Tx, id uuid.UUID, entropyBlob []byte, passphraseHash string) (int64, error) {
	query := `UPDATE wallet_records SET entropy_blob = $1, passphrase_hash = $2, updated_at = $3 WHERE id = $4`

	tag, err := tx.Exec(ctx, query, entropyBlob, passphraseHash, time.Now().UTC(), id)
	if err != nil {
		return 0, fmt.Errorf("rotate wallet secrets: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes a wallet record. Deleting an absent id is a no-op success.
func (r *WalletRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM wallet_records WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete wallet record: %w", err)
	}
	return nil
}
