// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # gorm connection setup (sqlite, postgres) and migrations
//	├── errors.go        # store-level sentinel errors shared by every backend
//	├── users/           # user accounts on gorm
//	├── entries/         # secret entries on gorm
//	└── mongodb/         # users and secret entries on MongoDB
//
// # Choosing a Backend
//
// The connection string decides the backend:
//
//	mongodb://host/ or mongodb+srv://...  -> mongodb.Connect
//	postgres://... or postgresql://...    -> NewDatabase (postgres driver)
//	anything else                         -> NewDatabase (sqlite path or DSN)
//
// # Interface Implementations
//
//   - users.Repository, mongodb.UserRepository: implement auth.UserStore
//   - entries.Repository, mongodb.EntryRepository: implement vault.Store
//
// Email uniqueness is enforced by a unique index in every backend. Repositories
// report the violation as ErrDuplicate and never pre-check for existence.
package database
