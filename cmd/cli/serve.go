package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"recipe-catalog/cmd/config"
	migration "recipe-catalog/cmd/database/migrate"
	"recipe-catalog/internal/utils"
	"recipe-catalog/pkg/database"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func ServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Initialize the schema and serve HTTP traffic",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		return err
	}
	setLogLevel()

	gateway, err := openGateway(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := gateway.Close(); err != nil {
			log.Errorf("error closing database: %v", err)
		}
	}()

	// The listener is opened only after the schema exists.
	if err := migration.Migrate(gateway.DB()); err != nil {
		return err
	}

	app, err := config.NewApp(gateway, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := net.JoinHostPort("", cfg.AppPort)
		log.Infof("listening on %s", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		// Runs the shutdown hooks so the access log is released.
		_ = app.Shutdown()
		return err
	case <-ctx.Done():
		log.Info("shutting down")
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func openGateway(cfg utils.Config) (*database.Gateway, error) {
	db, err := config.ConnectDB(cfg)
	if err != nil {
		return nil, err
	}
	return database.NewGateway(db), nil
}

// setLogLevel applies LOG_LEVEL from the most recently loaded config.
func setLogLevel() log.Level {
	level := log.LevelInfo
	switch utils.GetConfig("LOG_LEVEL") {
	case "debug":
		level = log.LevelDebug
	case "warn":
		level = log.LevelWarn
	case "error":
		level = log.LevelError
	}
	log.SetLevel(level)
	return level
}
