package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"wallet-custody/config"
	"wallet-custody/pkg/apperror"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Supported entropy-blob ciphers.
const (
	CipherAES256GCM        = "aes-256-gcm"
	CipherChaCha20Poly1305 = "chacha20poly1305"
)

// Blob layout identifiers.
const (
	blobVersion1 = byte(0x01)

	cipherIDAESGCM   = byte(0x01)
	cipherIDChaCha20 = byte(0x02)

	blobSaltLen  = 16
	blobNonceLen = 12
	blobKeyLen   = 32

	// version + cipherID + iterations(4) + memoryKiB(4) + threads(1)
	blobHeaderLen = 11
)

// AEADEncryptionService implements ports.EncryptionService. The sealing key
// is derived from the owner's passphrase with Argon2id; the KDF parameters
// and cipher choice are recorded in the blob header so previously written
// blobs stay decryptable after configuration changes.
type AEADEncryptionService struct {
	kdf      config.KDFConfig
	cipherID byte
}

// NewAEADEncryptionService creates an AEADEncryptionService for the
// configured cipher.
func NewAEADEncryptionService(kdf config.KDFConfig, cipherAlgorithm string) (*AEADEncryptionService, error) {
	if err := kdf.Validate(); err != nil {
		return nil, fmt.Errorf("kdf config: %w", err)
	}

	var id byte
	switch cipherAlgorithm {
	case CipherAES256GCM:
		id = cipherIDAESGCM
	case CipherChaCha20Poly1305:
		id = cipherIDChaCha20
	default:
		return nil, fmt.Errorf("unsupported cipher: %s", cipherAlgorithm)
	}

	return &AEADEncryptionService{kdf: kdf, cipherID: id}, nil
}

// Encrypt seals entropy under a passphrase-derived key.
// Blob layout: version(1) | cipherID(1) | iterations(4) | memory_kib(4) |
// threads(1) | salt(16) | nonce(12) | ciphertext+tag.
func (s *AEADEncryptionService) Encrypt(entropy []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, blobSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("generating salt: %w", err))
	}

	key := argon2.IDKey([]byte(passphrase), salt, s.kdf.Iterations, s.kdf.MemoryKiB, s.kdf.Threads, blobKeyLen)
	defer zeroBytes(key)

	aead, err := newAEAD(s.cipherID, key)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(err)
	}

	nonce := make([]byte, blobNonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("generating nonce: %w", err))
	}

	blob := make([]byte, 0, blobHeaderLen+blobSaltLen+blobNonceLen+len(entropy)+aead.Overhead())
	blob = append(blob, blobVersion1, s.cipherID)
	blob = binary.BigEndian.AppendUint32(blob, s.kdf.Iterations)
	blob = binary.BigEndian.AppendUint32(blob, s.kdf.MemoryKiB)
	blob = append(blob, s.kdf.Threads)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)

	// The header is authenticated as associated data, so parameter
	// tampering fails the open exactly like ciphertext tampering.
	return aead.Seal(blob, nonce, entropy, blob[:blobHeaderLen]), nil
}

// Decrypt opens a blob produced by Encrypt. Every failure mode returns the
// same authentication error: passphrase mismatch, truncation, tampering and
// unknown versions are indistinguishable to the caller.
func (s *AEADEncryptionService) Decrypt(blob []byte, passphrase string) ([]byte, error) {
	if len(blob) < blobHeaderLen+blobSaltLen+blobNonceLen {
		return nil, apperror.ErrAuthenticationFailed()
	}
	if blob[0] != blobVersion1 {
		return nil, apperror.ErrAuthenticationFailed()
	}

	cipherID := blob[1]
	iterations := binary.BigEndian.Uint32(blob[2:6])
	memoryKiB := binary.BigEndian.Uint32(blob[6:10])
	threads := blob[10]
	if iterations == 0 || memoryKiB == 0 || threads == 0 {
		return nil, apperror.ErrAuthenticationFailed()
	}

	salt := blob[blobHeaderLen : blobHeaderLen+blobSaltLen]
	nonce := blob[blobHeaderLen+blobSaltLen : blobHeaderLen+blobSaltLen+blobNonceLen]
	ciphertext := blob[blobHeaderLen+blobSaltLen+blobNonceLen:]

	key := argon2.IDKey([]byte(passphrase), salt, iterations, memoryKiB, threads, blobKeyLen)
	defer zeroBytes(key)

	aead, err := newAEAD(cipherID, key)
	if err != nil {
		return nil, apperror.ErrAuthenticationFailed()
	}

	entropy, err := aead.Open(nil, nonce, ciphertext, blob[:blobHeaderLen])
	if err != nil {
		return nil, apperror.ErrAuthenticationFailed()
	}
	return entropy, nil
}

func newAEAD(cipherID byte, key []byte) (cipher.AEAD, error) {
	switch cipherID {
	case cipherIDAESGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("creating cipher: %w", err)
		}
		return cipher.NewGCM(block)
	case cipherIDChaCha20:
		return chacha20poly1305.New(key)
	default:
		return nil, fmt.Errorf("unknown cipher id: %#x", cipherID)
	}
}
