package config

const (
	DefaultPort         = 5000
	DefaultDatabaseName = "project"
	DefaultCORSOrigin   = "http://localhost:5173"

	// DefaultEnvFile is read on startup when present.
	DefaultEnvFile = ".env"

	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)
