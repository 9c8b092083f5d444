package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/passmanager/internal/auth"
	"github.com/mrlokans/passmanager/internal/database"
	"github.com/mrlokans/passmanager/internal/database/entries"
	"github.com/mrlokans/passmanager/internal/database/mongodb"
	"github.com/mrlokans/passmanager/internal/database/users"
	"github.com/mrlokans/passmanager/internal/http"
	"github.com/mrlokans/passmanager/internal/vault"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// UserStore implementations
var _ auth.UserStore = (*users.Repository)(nil)
var _ auth.UserStore = (*mongodb.UserRepository)(nil)

// Secret entry Store implementations
var _ vault.Store = (*entries.Repository)(nil)
var _ vault.Store = (*mongodb.EntryRepository)(nil)

// =============================================================================
// Health
// =============================================================================

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)
var _ http.Pinger = (*mongodb.Client)(nil)
