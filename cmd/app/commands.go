package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nailorders/cmd"
	httpin "nailorders/internal/adapters/in/http"
	"nailorders/internal/adapters/out/postgres"
	"nailorders/internal/adapters/out/s3storage"
	"nailorders/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	shutdownTimeout = 10 * time.Second
	bodyLimit       = "64M"
)

type rootOptions struct {
	envFile string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "nailorders",
		Short:        "Back-office for press-on nail orders",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file")

	root.AddCommand(newServeCommand(opts))
	root.AddCommand(newMigrateImagesCommand(opts))

	return root
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the cache warm-up job",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, opts)
		},
	}
}

func newMigrateImagesCommand(opts *rootOptions) *cobra.Command {
	var dryRun bool

	command := &cobra.Command{
		Use:   "migrate-images",
		Short: "Move inline base64 images to object storage",
		Long: `Scan every order for images stored inline as data URLs, upload them
to object storage and replace them with public URLs.

An order is only rewritten when all of its inline images upload. With
--dry-run nothing is uploaded or written; the report shows what would move.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return migrateImages(c.Context(), opts, dryRun, c)
		},
	}
	command.Flags().BoolVar(&dryRun, "dry-run", false, "report without uploading or writing")

	return command
}

func serve(ctx context.Context, opts *rootOptions) error {
	app, cleanup, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	jobManager := app.root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := httpin.NewEcho(app.logger, bodyLimit)
	e.Logger.SetLevel(gommonLevel(app.config.LogLevel))
	app.root.CreateHTTPServer().RegisterRoutes(e)

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", app.config.HTTPPort)
		app.logger.InfoContext(ctx, "HTTP server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err = <-serverErr:
		return err
	case <-ctx.Done():
	}

	app.logger.InfoContext(ctx, "Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

func migrateImages(ctx context.Context, opts *rootOptions, dryRun bool, c *cobra.Command) error {
	app, cleanup, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := app.root.CreateMigrateInlineImagesCommandHandler().
		Handle(ctx, commands.NewMigrateInlineImagesCommand(dryRun))
	if err != nil {
		return err
	}

	c.Printf("scanned=%d migrated=%d skipped=%d failed=%d dry-run=%t\n",
		report.Scanned, report.Migrated, report.Skipped, report.Failed, dryRun)
	for _, id := range report.FailedIDs {
		c.Printf("failed: %s\n", id)
	}
	return nil
}

type application struct {
	config cmd.Config
	logger *slog.Logger
	root   cmd.CompositionRoot
}

func bootstrap(ctx context.Context, opts *rootOptions) (application, func(), error) {
	config, err := cmd.LoadConfig(opts.envFile)
	if err != nil {
		return application{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	db, err := postgres.Open(ctx, config.Postgres())
	if err != nil {
		return application{}, nil, err
	}
	if err = postgres.Migrate(db); err != nil {
		closeDB(logger, db)
		return application{}, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	storage := s3storage.New(config.S3())

	return application{
		config: config,
		logger: logger,
		root:   cmd.NewCompositionRoot(config, db, storage, logger),
	}, func() { closeDB(logger, db) }, nil
}

func closeDB(logger *slog.Logger, db *gorm.DB) {
	if err := postgres.Close(db); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
}

func gommonLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
