package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet Custody (WAL) ----

func ErrInvalidStrength(bits int) *AppError {
	return New("WAL_001", fmt.Sprintf("Invalid entropy strength: %d bits", bits), http.StatusBadRequest)
}

func ErrDerivation(err error) *AppError {
	return Wrap("WAL_002", "Key derivation failed", http.StatusUnprocessableEntity, err)
}

func ErrInvalidPath(detail string) *AppError {
	return New("WAL_003", fmt.Sprintf("Invalid derivation path: %s", detail), http.StatusBadRequest)
}

// ErrAuthenticationFailed covers every entropy decryption failure.
// The code and message are identical for passphrase mismatch, blob tampering
// and malformed blobs so the error shape cannot act as a passphrase oracle.
func ErrAuthenticationFailed() *AppError {
	return New("WAL_004", "Passphrase authentication failed", http.StatusUnauthorized)
}

func ErrDuplicateWallet() *AppError {
	return New("WAL_005", "Wallet already exists for owner", http.StatusConflict)
}

func ErrWalletNotFound() *AppError {
	return New("WAL_006", "Wallet not found", http.StatusNotFound)
}

// ---- Request validation (VAL) ----

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
