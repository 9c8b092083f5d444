package http

import (
	"github.com/rs/zerolog"

	"github.com/mrlokans/passmanager/internal/auth"
	"github.com/mrlokans/passmanager/internal/vault"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Authentication
	AuthController *auth.AuthController
	AuthMiddleware *auth.Middleware

	// Secret entry persistence, scoped per request with vault.ForOwner
	EntryStore vault.Store

	// Store connectivity for /health (optional)
	Health Pinger

	// Browser origin allowed to call the API with credentials
	AllowedOrigin string

	// Enables HSTS
	SecureCookies bool

	Logger zerolog.Logger

	// Application info
	Version string
}
