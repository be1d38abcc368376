package domain

import (
	"time"

	"github.com/google/uuid"
)

// Supported entropy strengths in bits.
const (
	EntropyStrength128 = 128
	EntropyStrength160 = 160
	EntropyStrength192 = 192
	EntropyStrength224 = 224
	EntropyStrength256 = 256
)

// ValidEntropyStrength reports whether bits is an allowed entropy strength.
func ValidEntropyStrength(bits int) bool {
	switch bits {
	case EntropyStrength128, EntropyStrength160, EntropyStrength192,
		EntropyStrength224, EntropyStrength256:
		return true
	}
	return false
}

// WalletRecord is one owner's custody record. EntropyBlob holds the
// authenticated-encrypted wallet entropy; it is never persisted, logged or
// transmitted in plaintext. PassphraseHash is a one-way Argon2id hash,
// never the raw passphrase.
type WalletRecord struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	EntropyBlob     []byte    `json:"-"`
	PassphraseHash  string    `json:"-"`
	SeedFingerprint string    `json:"seed_fingerprint"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
