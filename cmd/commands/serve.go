package commands

import (
	"Groeneweide-Backend/cmd/config"
	migration "Groeneweide-Backend/cmd/database/migrate"
	"Groeneweide-Backend/internal/utils"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "Run migrations before serving")
}

func runServe(ctx context.Context) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := utils.SetupTracing(ctx, cfg.App.Name, cfg.Otel.Endpoint)
	if err != nil {
		return err
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}
	if autoMigrate {
		if err := migration.Migrate(db, logger); err != nil {
			return err
		}
	}

	publisher, err := config.NewPublisher(cfg, logger)
	if err != nil {
		return err
	}

	s3, err := config.NewStorage(ctx, cfg)
	if err != nil {
		return err
	}

	app, err := config.NewApp(db, cfg, logger, publisher, s3)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.App.Port), zap.String("driver", cfg.Database.Driver))
		errCh <- app.Listen(":" + cfg.App.Port)
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		logger.Info("shutting down")
		err = app.ShutdownWithTimeout(10 * time.Second)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = errors.Join(err, publisher.Close(), shutdownTracing(shutdownCtx))
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		err = errors.Join(err, sqlDB.Close())
	}
	return err
}
