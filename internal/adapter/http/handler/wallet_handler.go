package handler

import (
	"time"

	"wallet-custody/internal/adapter/http/dto"
	"wallet-custody/internal/adapter/http/middleware"
	"wallet-custody/internal/core/domain"
	"wallet-custody/internal/core/ports"
	"wallet-custody/pkg/apperror"
	"wallet-custody/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet custody endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	ownerID, ok := c.Get(middleware.CtxOwnerID)
	if !ok {
		response.Error(c, apperror.Validation("missing owner identity"))
		return
	}

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.walletSvc.CreateWallet(c.Request.Context(), ports.CreateWalletRequest{
		OwnerID:      ownerID.(uuid.UUID),
		StrengthBits: req.StrengthBits,
		Passphrase:   req.Passphrase,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateWalletResponse{
		WalletResponse: toWalletResponse(result.Record),
		Mnemonic:       result.Mnemonic,
	})
}

// Get handles GET /api/v1/wallets/:id.
func (h *WalletHandler) Get(c *gin.Context) {
	id, ok := parseWalletID(c)
	if !ok {
		return
	}

	record, err := h.walletSvc.GetWallet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(record))
}

// RotatePassphrase handles POST /api/v1/wallets/:id/rotate.
func (h *WalletHandler) RotatePassphrase(c *gin.Context) {
	id, ok := parseWalletID(c)
	if !ok {
		return
	}

	var req dto.RotatePassphraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	record, err := h.walletSvc.RotatePassphrase(c.Request.Context(), id, req.OldPassphrase, req.NewPassphrase)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(record))
}

// Backup handles POST /api/v1/wallets/:id/backup.
func (h *WalletHandler) Backup(c *gin.Context) {
	id, ok := parseWalletID(c)
	if !ok {
		return
	}

	var req dto.BackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	mnemonic, err := h.walletSvc.ExportMnemonic(c.Request.Context(), id, req.Passphrase)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.MnemonicResponse{Mnemonic: mnemonic})
}

// Derive handles POST /api/v1/wallets/:id/derive.
func (h *WalletHandler) Derive(c *gin.Context) {
	id, ok := parseWalletID(c)
	if !ok {
		return
	}

	var req dto.DeriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	path, err := domain.ParseDerivationPath(req.Path)
	if err != nil {
		response.Error(c, apperror.ErrInvalidPath(err.Error()))
		return
	}

	key, err := h.walletSvc.DeriveWatchKey(c.Request.Context(), id, req.Passphrase, path)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WatchKeyResponse{
		Path:        key.Path,
		XPub:        key.XPub,
		Fingerprint: key.Fingerprint,
	})
}

// Delete handles DELETE /api/v1/wallets/:id. Idempotent: deleting an
// absent wallet also returns 204.
func (h *WalletHandler) Delete(c *gin.Context) {
	id, ok := parseWalletID(c)
	if !ok {
		return
	}

	if err := h.walletSvc.DeleteWallet(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func parseWalletID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("wallet id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func toWalletResponse(record *domain.WalletRecord) dto.WalletResponse {
	return dto.WalletResponse{
		ID:              record.ID.String(),
		OwnerID:         record.OwnerID.String(),
		SeedFingerprint: record.SeedFingerprint,
		CreatedAt:       record.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       record.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
