package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		CORS
		Log
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		URL  string // mongodb://, postgres:// or a sqlite path
		Name string // Mongo database name
	}
	Auth struct {
		JWTSecret     string
		SecureCookies bool // Enabled in production
	}
	CORS struct {
		AllowedOrigin string
	}
	Log struct {
		Level  string
		Format string // "console" or "json"
	}
	Global struct {
		Environment              string
		ShutdownTimeoutInSeconds int
	}
)

// IsProduction reports whether the process runs with APP_ENV=production.
func (g Global) IsProduction() bool {
	return strings.EqualFold(g.Environment, EnvironmentProduction)
}

// firstNonEmpty returns the value of the first key that is set, used for legacy env var aliases.
func firstNonEmpty(v *viper.Viper, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(v.GetString(key)); value != "" {
			return value
		}
	}
	return ""
}

// Load reads configuration from the environment. If envFile is not empty and exists,
// its KEY=VALUE pairs are used as a fallback for variables missing from the environment.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("database_name", DefaultDatabaseName)
	v.SetDefault("cors_origin", DefaultCORSOrigin)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	env := firstNonEmpty(v, "APP_ENV", "NODE_ENV")
	if env == "" {
		env = EnvironmentDevelopment
	}
	global := Global{
		Environment:              env,
		ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
	}

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			URL:  firstNonEmpty(v, "DATABASE_URL", "MONGO_URI"),
			Name: v.GetString("DATABASE_NAME"),
		},
		Auth: Auth{
			JWTSecret:     v.GetString("JWT_SECRET"),
			SecureCookies: global.IsProduction(),
		},
		CORS: CORS{
			AllowedOrigin: v.GetString("CORS_ORIGIN"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Global: global,
	}, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.URL == "" {
		errs = append(errs, errors.New("DATABASE_URL (or MONGO_URI) is required"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", c.HTTP.Port))
	}
	if origin, err := url.Parse(c.CORS.AllowedOrigin); err != nil || origin.Scheme == "" || origin.Host == "" {
		errs = append(errs, fmt.Errorf("CORS_ORIGIN %q must be an absolute origin like http://localhost:5173", c.CORS.AllowedOrigin))
	}
	return errors.Join(errs...)
}

// Addr returns the listen address.
func (h HTTP) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
