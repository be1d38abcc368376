package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-custody/internal/core/domain"
	"wallet-custody/internal/core/ports"
	"wallet-custody/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

const pgUniqueViolation = "23505"

// seedPassphrase is the BIP-39 seed passphrase for every wallet, fixed to
// empty: the storage passphrase guards the encrypted blob only, so rotating
// it never changes the seed, derived watch keys, or the stored fingerprint.
const seedPassphrase = ""

// WalletServiceImpl implements ports.WalletService. It orchestrates the
// derivation service and the record store so raw entropy exists only inside
// a single call: generated, derived from, encrypted and zeroized before
// the call returns.
type WalletServiceImpl struct {
	repo       ports.WalletRepository
	transactor ports.DBTransactor
	locker     ports.OwnerLocker
	derivSvc   ports.KeyDerivationService
	encSvc     ports.EncryptionService
	hashSvc    ports.HashService
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	repo ports.WalletRepository,
	transactor ports.DBTransactor,
	locker ports.OwnerLocker,
	derivSvc ports.KeyDerivationService,
	encSvc ports.EncryptionService,
	hashSvc ports.HashService,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		repo:       repo,
		transactor: transactor,
		locker:     locker,
		derivSvc:   derivSvc,
		encSvc:     encSvc,
		hashSvc:    hashSvc,
		log:        log,
	}
}

// CreateWallet onboards one wallet per owner identity: fresh entropy,
// master-key fingerprint, hashed passphrase and an encrypted entropy blob.
// The returned mnemonic is the owner's one-time backup phrase.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context, req ports.CreateWalletRequest) (*ports.CreateWalletResult, error) {
	release, err := s.locker.Acquire(ctx, req.OwnerID)
	if err != nil {
		return nil, apperror.ErrLockTimeout(err)
	}
	defer release()

	existing, err := s.repo.GetByOwnerID(ctx, req.OwnerID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("check owner wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateWallet()
	}

	entropy, err := s.derivSvc.GenerateEntropy(req.StrengthBits)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(entropy)

	master, fingerprint, err := s.derivSvc.DeriveMasterKey(entropy, seedPassphrase)
	if err != nil {
		return nil, err
	}
	defer master.Zero()

	mnemonic, err := s.derivSvc.MnemonicFromEntropy(entropy)
	if err != nil {
		return nil, err
	}

	passphraseHash, err := s.hashSvc.Hash(req.Passphrase)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash passphrase: %w", err))
	}

	blob, err := s.encSvc.Encrypt(entropy, req.Passphrase)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &domain.WalletRecord{
		ID:              uuid.New(),
		OwnerID:         req.OwnerID,
		EntropyBlob:     blob,
		PassphraseHash:  passphraseHash,
		SeedFingerprint: fingerprint,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		// Unique index on owner_id closes the check-then-create race.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.ErrDuplicateWallet()
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create wallet record: %w", err))
	}

	s.log.Info().
		Str("wallet_id", record.ID.String()).
		Str("owner_id", record.OwnerID.String()).
		Str("fingerprint", fingerprint).
		Int("strength_bits", req.StrengthBits).
		Msg("wallet created")

	return &ports.CreateWalletResult{Record: record, Mnemonic: mnemonic}, nil
}

// GetWallet fetches a record by id.
func (s *WalletServiceImpl) GetWallet(ctx context.Context, id uuid.UUID) (*domain.WalletRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return record, nil
}

// RotatePassphrase re-encrypts the entropy blob under a new passphrase and
// replaces blob and hash atomically. The row lock inside the transaction
// backs up the per-owner mutex against lost updates.
func (s *WalletServiceImpl) RotatePassphrase(ctx context.Context, id uuid.UUID, oldPassphrase, newPassphrase string) (*domain.WalletRecord, error) {
	record, err := s.GetWallet(ctx, id)
	if err != nil {
		return nil, err
	}

	release, err := s.locker.Acquire(ctx, record.OwnerID)
	if err != nil {
		return nil, apperror.ErrLockTimeout(err)
	}
	defer release()

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin rotation: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	locked, err := s.repo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lock wallet row: %w", err))
	}
	if locked == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	entropy, err := s.encSvc.Decrypt(locked.EntropyBlob, oldPassphrase)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(entropy)

	newHash, err := s.hashSvc.Hash(newPassphrase)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash new passphrase: %w", err))
	}

	newBlob, err := s.encSvc.Encrypt(entropy, newPassphrase)
	if err != nil {
		return nil, err
	}

	affected, err := s.repo.RotateSecrets(ctx, tx, id, newBlob, newHash)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("rotate secrets: %w", err))
	}
	if affected == 0 {
		return nil, apperror.ErrWalletNotFound()
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit rotation: %w", err))
	}

	s.log.Info().
		Str("wallet_id", id.String()).
		Str("owner_id", record.OwnerID.String()).
		Msg("passphrase rotated")

	return s.GetWallet(ctx, id)
}

// ExportMnemonic returns the backup phrase after passphrase verification.
func (s *WalletServiceImpl) ExportMnemonic(ctx context.Context, id uuid.UUID, passphrase string) (string, error) {
	entropy, _, err := s.unlockEntropy(ctx, id, passphrase)
	if err != nil {
		return "", err
	}
	defer zeroBytes(entropy)

	return s.derivSvc.MnemonicFromEntropy(entropy)
}

// DeriveWatchKey derives a public-only child key at the given path.
func (s *WalletServiceImpl) DeriveWatchKey(ctx context.Context, id uuid.UUID, passphrase string, path domain.DerivationPath) (*ports.WatchKey, error) {
	if len(path) == 0 {
		return nil, apperror.ErrInvalidPath("path has no segments")
	}

	entropy, _, err := s.unlockEntropy(ctx, id, passphrase)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(entropy)

	master, _, err := s.derivSvc.DeriveMasterKey(entropy, seedPassphrase)
	if err != nil {
		return nil, err
	}
	defer master.Zero()

	child, err := s.derivSvc.DeriveChildKey(master, path)
	if err != nil {
		return nil, err
	}
	defer child.Zero()

	xpub, err := child.ExtendedPublicKey()
	if err != nil {
		return nil, err
	}

	return &ports.WatchKey{
		Path:        path.String(),
		XPub:        xpub,
		Fingerprint: child.Fingerprint(),
	}, nil
}

// DeleteWallet removes a record. Deleting an absent id succeeds as a no-op:
// the store is the terminal owner of the record lifecycle.
func (s *WalletServiceImpl) DeleteWallet(ctx context.Context, id uuid.UUID) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if record == nil {
		return nil
	}

	release, err := s.locker.Acquire(ctx, record.OwnerID)
	if err != nil {
		return apperror.ErrLockTimeout(err)
	}
	defer release()

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("delete wallet: %w", err))
	}

	s.log.Info().
		Str("wallet_id", id.String()).
		Str("owner_id", record.OwnerID.String()).
		Msg("wallet deleted")

	return nil
}

// unlockEntropy verifies the passphrase against the stored hash and decrypts
// the entropy blob. Both gates run unconditionally and report the same
// authentication error, so every failure mode costs the same two KDF passes.
func (s *WalletServiceImpl) unlockEntropy(ctx context.Context, id uuid.UUID, passphrase string) ([]byte, *domain.WalletRecord, error) {
	record, err := s.GetWallet(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	ok, verifyErr := s.hashSvc.Verify(passphrase, record.PassphraseHash)
	entropy, decryptErr := s.encSvc.Decrypt(record.EntropyBlob, passphrase)
	if verifyErr != nil || !ok || decryptErr != nil {
		zeroBytes(entropy)
		return nil, nil, apperror.ErrAuthenticationFailed()
	}
	return entropy, record, nil
}
