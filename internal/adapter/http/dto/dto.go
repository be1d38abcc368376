package dto

// CreateWalletRequest is the request body for wallet onboarding.
// The passphrase is optional; an empty passphrase is a valid (if weak) choice.
type CreateWalletRequest struct {
	StrengthBits int    `json:"strength_bits" binding:"required"`
	Passphrase   string `json:"passphrase" binding:"max=512"`
}

// RotatePassphraseRequest is the request body for passphrase rotation.
type RotatePassphraseRequest struct {
	OldPassphrase string `json:"old_passphrase" binding:"max=512"`
	NewPassphrase string `json:"new_passphrase" binding:"max=512"`
}

// BackupRequest is the request body for mnemonic export.
type BackupRequest struct {
	Passphrase string `json:"passphrase" binding:"max=512"`
}

// DeriveRequest is the request body for watch-only child key derivation.
type DeriveRequest struct {
	Passphrase string `json:"passphrase" binding:"max=512"`
	Path       string `json:"path" binding:"required,max=256"`
}

// WalletResponse is the non-secret view of a wallet record. The entropy
// blob and passphrase hash never leave the service.
type WalletResponse struct {
	ID              string `json:"id"`
	OwnerID         string `json:"owner_id"`
	SeedFingerprint string `json:"seed_fingerprint"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// CreateWalletResponse extends WalletResponse with the one-time backup phrase.
type CreateWalletResponse struct {
	WalletResponse
	Mnemonic string `json:"mnemonic"`
}

// MnemonicResponse is the response body for mnemonic export.
type MnemonicResponse struct {
	Mnemonic string `json:"mnemonic"`
}

// WatchKeyResponse is the response body for watch-only derivation.
type WatchKeyResponse struct {
	Path        string `json:"path"`
	XPub        string `json:"xpub"`
	Fingerprint string `json:"fingerprint"`
}
