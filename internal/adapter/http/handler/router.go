package handler

import (
	"wallet-custody/internal/adapter/http/middleware"
	"wallet-custody/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 16)) // 64 KiB; custody payloads are tiny

	// Health check (deep: verifies PostgreSQL and Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/wallets")
	{
		// Onboarding needs the trusted owner-identity header; the
		// remaining routes address wallets by id.
		wallets.POST("", middleware.OwnerIdentity(), walletHandler.Create)
		wallets.GET("/:id", walletHandler.Get)
		wallets.POST("/:id/rotate", walletHandler.RotatePassphrase)
		wallets.POST("/:id/backup", walletHandler.Backup)
		wallets.POST("/:id/derive", walletHandler.Derive)
		wallets.DELETE("/:id", walletHandler.Delete)
	}

	return r
}
