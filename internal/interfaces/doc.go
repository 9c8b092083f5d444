// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - auth.UserStore: account persistence (internal/auth/service.go).
//     CreateUser must report a taken email as database.ErrDuplicate.
//   - vault.Store: secret entry persistence keyed by owner (internal/vault/store.go).
//     Handlers only reach it through vault.ForOwner.
//
// ## Operational Interfaces
//
//   - http.Pinger: store connectivity for /health (internal/http/health.go)
//
// # Implementations
//
// Each interface has a gorm implementation (sqlite or postgres, under
// internal/database) and a MongoDB implementation (internal/database/mongodb).
// The backend is chosen from the DATABASE_URL scheme in internal/entrypoint.
//
// checks.go holds compile-time assertions for every pairing.
package interfaces
