package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/passmanager/internal/entities"
)

// Dialect names the SQL engine behind a Database.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

type Database struct {
	DB      *gorm.DB
	Dialect Dialect
}

// IsMongoURL reports whether the connection string points at MongoDB rather than a SQL engine.
func IsMongoURL(url string) bool {
	return strings.HasPrefix(url, "mongodb://") || strings.HasPrefix(url, "mongodb+srv://")
}

// dialectorFor picks the gorm driver from the connection string.
// Anything that is not a postgres URL is treated as a sqlite path or DSN.
func dialectorFor(url string) (gorm.Dialector, Dialect) {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return postgres.Open(url), DialectPostgres
	}
	return sqlite.Open(strings.TrimPrefix(url, "sqlite://")), DialectSQLite
}

// NewDatabase opens a SQL database and migrates the schema.
func NewDatabase(url string) (*Database, error) {
	return newDatabase(url, logger.Warn)
}

// NewSilentDatabase is NewDatabase with gorm's query logging turned off. Used by tests.
func NewSilentDatabase(url string) (*Database, error) {
	return newDatabase(url, logger.Silent)
}

func newDatabase(url string, level logger.LogLevel) (*Database, error) {
	dialector, dialect := dialectorFor(url)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if dialect == DialectSQLite {
		// SQLite allows a single writer; one connection also keeps :memory: databases alive.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.SecretEntry{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DB: db, Dialect: dialect}, nil
}

// Ping checks that the database answers.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
