package handler

import (
	"ticket-wallet-service/internal/adapter/http/middleware"
	"ticket-wallet-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	TokenSvc       ports.TokenService
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
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes, all JWT-authenticated. Connection attempt limiting
	// lives inside the wallet service, not in middleware: the limit is per
	// authenticated user, not per route.
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.WalletSvc)

	v1 := r.Group("/api/v1")
	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.POST("/nonce", walletHandler.IssueNonce)
		wallets.POST("/connect", walletHandler.Connect)
		wallets.POST("/disconnect", walletHandler.Disconnect)
		wallets.POST("/restore", walletHandler.Restore)
		wallets.POST("/verify", walletHandler.VerifyOwnership)
		wallets.GET("", walletHandler.List)
		wallets.GET("/primary", walletHandler.GetPrimary)
		wallets.GET("/history", walletHandler.History)
	}

	return r
}
