package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrlokans/passmanager/internal/auth"
	"github.com/mrlokans/passmanager/internal/config"
	"github.com/mrlokans/passmanager/internal/database"
	"github.com/mrlokans/passmanager/internal/database/entries"
	"github.com/mrlokans/passmanager/internal/database/mongodb"
	"github.com/mrlokans/passmanager/internal/database/users"
	http_controllers "github.com/mrlokans/passmanager/internal/http"
	"github.com/mrlokans/passmanager/internal/logutil"
	"github.com/mrlokans/passmanager/internal/vault"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Stores bundles the persistence backends selected from DATABASE_URL.
type Stores struct {
	Users   auth.UserStore
	Entries vault.Store
	Health  http_controllers.Pinger
	Close   ShutdownFunc
}

// OpenStores connects to MongoDB for mongodb:// URLs and to a SQL database otherwise.
func OpenStores(ctx context.Context, cfg config.Database) (*Stores, error) {
	log := logutil.GetOrDefault(ctx)

	if database.IsMongoURL(cfg.URL) {
		client, err := mongodb.Connect(ctx, cfg.URL, cfg.Name)
		if err != nil {
			return nil, err
		}
		log.Info().Str("backend", "mongodb").Str("database", cfg.Name).Msg("Store connected")
		return &Stores{
			Users:   client.Users(),
			Entries: client.Entries(),
			Health:  client,
			Close: func(ctx context.Context) {
				if err := client.Close(ctx); err != nil {
					log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
				}
			},
		}, nil
	}

	db, err := database.NewDatabase(cfg.URL)
	if err != nil {
		return nil, err
	}
	log.Info().Str("backend", string(db.Dialect)).Msg("Store connected")
	return &Stores{
		Users:   users.NewRepository(db.DB),
		Entries: entries.NewRepository(db.DB),
		Health:  db,
		Close: func(context.Context) {
			if err := db.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close database")
			}
		},
	}, nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func Serve(ctx context.Context, handler http.Handler, cfg *config.Config, onShutdown ShutdownFunc) error {
	log := logutil.GetOrDefault(ctx).With().Str("server.addr", cfg.HTTP.Addr()).Logger()
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		IdleTimeout:       5 * time.Minute,
	}

	listenErr := make(chan error, 1)
	go func() {
		log.Info().Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			if onShutdown != nil {
				onShutdown(ctx)
			}
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", timeout).Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)

	// Stores close after in-flight requests drain.
	if onShutdown != nil {
		onShutdown(shutdownCtx)
	}
	if err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("Server exiting")
	return nil
}

// Run wires stores, auth and the router, then serves until ctx is cancelled.
// A missing JWT secret is fatal: the server never runs with an unsigned session scheme.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, version string) error {
	ctx = logutil.WithLogger(ctx, logger)
	logger.Info().Str("version", version).Str("env", cfg.Global.Environment).Msg("Starting passmanager")

	issuer, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret)
	if err != nil {
		return err
	}

	stores, err := OpenStores(ctx, cfg.Database)
	if err != nil {
		return err
	}

	service := auth.NewService(stores.Users, auth.NewHasher(auth.DefaultBcryptCost))
	middleware := auth.NewMiddleware(issuer)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		AuthController: auth.NewAuthController(service, issuer, middleware, cfg.Auth.SecureCookies),
		AuthMiddleware: middleware,
		EntryStore:     stores.Entries,
		Health:         stores.Health,
		AllowedOrigin:  cfg.CORS.AllowedOrigin,
		SecureCookies:  cfg.Auth.SecureCookies,
		Logger:         logger,
		Version:        version,
	})

	return Serve(ctx, router, cfg, stores.Close)
}
