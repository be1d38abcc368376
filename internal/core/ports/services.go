package ports

import (
	"context"

	"wallet-custody/internal/core/domain"

	"github.com/google/uuid"
)

// KeyHandle is an opaque reference to derived key material. Holders can
// derive further, export the public (watch-only) form and zeroize the
// underlying bytes, but never read the private key directly.
type KeyHandle interface {
	// Fingerprint is a short deterministic identifier of the key's public half.
	Fingerprint() string
	// ExtendedPublicKey serializes the neutered (public-only) extended key.
	ExtendedPublicKey() (string, error)
	// Zero wipes the underlying private key material.
	Zero()
}

// KeyDerivationService produces and consumes wallet entropy under a strict
// secrecy contract: raw entropy and private keys leave only as transient
// return values consumed synchronously by the caller.
type KeyDerivationService interface {
	// GenerateEntropy returns strengthBits/8 fresh random bytes.
	GenerateEntropy(strengthBits int) ([]byte, error)
	// DeriveMasterKey derives the hierarchical master key from entropy and an
	// optional passphrase. Returns the opaque handle and the deterministic
	// seed fingerprint used for duplicate-wallet detection.
	DeriveMasterKey(entropy []byte, passphrase string) (KeyHandle, string, error)
	// DeriveChildKey derives a child at the given path below master.
	DeriveChildKey(master KeyHandle, path domain.DerivationPath) (KeyHandle, error)
	// MnemonicFromEntropy renders entropy as its BIP-39 backup phrase.
	MnemonicFromEntropy(entropy []byte) (string, error)
}

// EncryptionService seals wallet entropy for storage with a key derived from
// the owner's passphrase. Decrypt fails with a single indistinguishable
// authentication error on passphrase mismatch or blob tampering.
type EncryptionService interface {
	Encrypt(entropy []byte, passphrase string) ([]byte, error)
	Decrypt(blob []byte, passphrase string) ([]byte, error)
}

// HashService handles passphrase hashing (Argon2id).
type HashService interface {
	Hash(passphrase string) (string, error)
	Verify(passphrase string, hash string) (bool, error)
}

// OwnerLocker serializes mutating operations per owner identity: at most one
// in-flight create/rotate/delete per owner.
type OwnerLocker interface {
	// Acquire blocks until the owner's lock is held, the context is done or
	// the locker's wait budget expires. The returned function releases the lock.
	Acquire(ctx context.Context, ownerID uuid.UUID) (func(), error)
}

// --- Service Ports (Business Logic) ---

// WalletService defines the custody orchestration operations.
type WalletService interface {
	CreateWallet(ctx context.Context, req CreateWalletRequest) (*CreateWalletResult, error)
	GetWallet(ctx context.Context, id uuid.UUID) (*domain.WalletRecord, error)
	RotatePassphrase(ctx context.Context, id uuid.UUID, oldPassphrase, newPassphrase string) (*domain.WalletRecord, error)
	ExportMnemonic(ctx context.Context, id uuid.UUID, passphrase string) (string, error)
	DeriveWatchKey(ctx context.Context, id uuid.UUID, passphrase string, path domain.DerivationPath) (*WatchKey, error)
	DeleteWallet(ctx context.Context, id uuid.UUID) error
}

// CreateWalletRequest holds validated input for wallet onboarding.
type CreateWalletRequest struct {
	OwnerID      uuid.UUID
	StrengthBits int
	Passphrase   string
}

// CreateWalletResult is the onboarding outcome. Mnemonic is the one-time
// backup phrase, shown only here and on an explicit passphrase-verified export.
type CreateWalletResult struct {
	Record   *domain.WalletRecord
	Mnemonic string
}

// WatchKey is a public-only derived key, safe to hand out.
type WatchKey struct {
	Path        string
	XPub        string
	Fingerprint string
}
