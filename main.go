package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mrlokans/passmanager/internal/auth"
	"github.com/mrlokans/passmanager/internal/config"
	"github.com/mrlokans/passmanager/internal/entrypoint"
	"github.com/mrlokans/passmanager/internal/logutil"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "passmanager",
		Usage:   "Multi-user password vault API",
		Version: fmt.Sprintf("%s (%s)", Version, Commit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Optional KEY=VALUE file used as a fallback for unset environment variables",
				Value: config.DefaultEnvFile,
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API (default)",
				Action: serve,
			},
			{
				Name:   "gen-secret",
				Usage:  "Print a random value suitable for JWT_SECRET",
				Action: genSecret,
			},
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("Application failed")
		cancel()
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logutil.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	log.Logger = logger
	if cfg.Global.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	return entrypoint.Run(c.Context, cfg, logger, Version)
}

func genSecret(c *cli.Context) error {
	secret, err := auth.GenerateSecret()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, secret)
	return err
}
