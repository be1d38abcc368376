package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"wallet-custody/internal/core/domain"
	"wallet-custody/internal/core/ports"
	"wallet-custody/pkg/apperror"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
)

// HDKeyDerivationService implements ports.KeyDerivationService using BIP-39
// entropy/seed handling and BIP-32 hierarchical derivation. The optional
// passphrase of DeriveMasterKey is the BIP-39 seed passphrase.
type HDKeyDerivationService struct {
	net *chaincfg.Params
}

// NewHDKeyDerivationService creates a new HDKeyDerivationService.
func NewHDKeyDerivationService() *HDKeyDerivationService {
	return &HDKeyDerivationService{net: &chaincfg.MainNetParams}
}

// GenerateEntropy returns strengthBits/8 bytes from the secure random source.
func (s *HDKeyDerivationService) GenerateEntropy(strengthBits int) ([]byte, error) {
	if !domain.ValidEntropyStrength(strengthBits) {
		return nil, apperror.ErrInvalidStrength(strengthBits)
	}
	entropy, err := bip39.NewEntropy(strengthBits)
	if err != nil {
		return nil, apperror.ErrDerivation(fmt.Errorf("generate entropy: %w", err))
	}
	return entropy, nil
}

// DeriveMasterKey derives the BIP-32 master key from entropy and passphrase.
// The seed fingerprint is computed from the master public key, so it is
// deterministic per (entropy, passphrase) and safe to persist.
func (s *HDKeyDerivationService) DeriveMasterKey(entropy []byte, passphrase string) (ports.KeyHandle, string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, "", apperror.ErrDerivation(fmt.Errorf("entropy to mnemonic: %w", err))
	}

	seed := bip39.NewSeed(mnemonic, passphrase)
	master, err := hdkeychain.NewMaster(seed, s.net)
	zeroBytes(seed)
	if err != nil {
		return nil, "", apperror.ErrDerivation(fmt.Errorf("master key from seed: %w", err))
	}

	handle, err := newExtendedKeyHandle(master)
	if err != nil {
		master.Zero()
		return nil, "", err
	}
	return handle, handle.Fingerprint(), nil
}

// DeriveChildKey derives a child key below master at the given path.
func (s *HDKeyDerivationService) DeriveChildKey(master ports.KeyHandle, path domain.DerivationPath) (ports.KeyHandle, error) {
	if len(path) == 0 {
		return nil, apperror.ErrInvalidPath("path has no segments")
	}

	parent, ok := master.(*extendedKeyHandle)
	if !ok {
		return nil, apperror.ErrDerivation(fmt.Errorf("unknown key handle type %T", master))
	}

	key := parent.key
	for _, seg := range path {
		child, err := key.Derive(seg.ChildIndex())
		if err != nil {
			// Intermediate keys below the caller's handle are discarded.
			if key != parent.key {
				key.Zero()
			}
			return nil, apperror.ErrDerivation(fmt.Errorf("derive segment %s: %w", path.String(), err))
		}
		if key != parent.key {
			key.Zero()
		}
		key = child
	}

	return newExtendedKeyHandle(key)
}

// MnemonicFromEntropy renders entropy as its BIP-39 word sequence.
func (s *HDKeyDerivationService) MnemonicFromEntropy(entropy []byte) (string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", apperror.ErrDerivation(fmt.Errorf("entropy to mnemonic: %w", err))
	}
	return mnemonic, nil
}

// extendedKeyHandle wraps a BIP-32 extended key without exposing its bytes.
type extendedKeyHandle struct {
	key         *hdkeychain.ExtendedKey
	fingerprint string
}

func newExtendedKeyHandle(key *hdkeychain.ExtendedKey) (*extendedKeyHandle, error) {
	pub, err := key.ECPubKey()
	if err != nil {
		return nil, apperror.ErrDerivation(fmt.Errorf("extract public key: %w", err))
	}
	digest := sha256.Sum256(pub.SerializeCompressed())
	return &extendedKeyHandle{
		key:         key,
		fingerprint: hex.EncodeToString(digest[:8]),
	}, nil
}

// Fingerprint returns the short public-key digest of the handle.
func (h *extendedKeyHandle) Fingerprint() string {
	return h.fingerprint
}

// ExtendedPublicKey serializes the neutered (watch-only) extended key.
func (h *extendedKeyHandle) ExtendedPublicKey() (string, error) {
	neutered, err := h.key.Neuter()
	if err != nil {
		return "", apperror.ErrDerivation(fmt.Errorf("neuter key: %w", err))
	}
	return neutered.String(), nil
}

// Zero wipes the private key material behind the handle.
func (h *extendedKeyHandle) Zero() {
	h.key.Zero()
}

// zeroBytes overwrites a secret byte slice in place.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
