package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fieldroutes/cmd"
	api "fieldroutes/internal/adapters/in/http"
	"fieldroutes/internal/adapters/out/postgres"

	"github.com/fatih/color"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(loadConfig configLoader) *cobra.Command {
	var migrate bool

	command := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and background jobs",
		Run: func(_ *cobra.Command, _ []string) {
			configs, logger, err := loadConfig()
			if err != nil {
				log.Fatalf("invalid configuration: %v", err)
			}

			gormDB, err := postgres.Open(configs.DSN())
			if err != nil {
				log.Fatalf("failed to connect database: %v", err)
			}
			sqlDB, err := gormDB.DB()
			if err != nil {
				log.Fatalf("failed to get database handle: %v", err)
			}
			defer sqlDB.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if migrate {
				if err := postgres.Migrate(ctx, gormDB); err != nil {
					log.Fatalf("failed to migrate database: %v", err)
				}
			}

			app := cmd.NewCompositionRoot(configs, gormDB, logger)

			jobManager, err := app.CreateJobManager()
			if err != nil {
				log.Fatalf("failed to configure jobs: %v", err)
			}
			if err := jobManager.StartAll(); err != nil {
				log.Fatalf("failed to start jobs: %v", err)
			}
			defer jobManager.StopAll()

			router, err := api.NewRouter(app.CreateHTTPServer(), logger)
			if err != nil {
				log.Fatalf("failed to build router: %v", err)
			}

			address := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
			serverErr := make(chan error, 1)
			go func() {
				serverErr <- router.Start(address)
			}()
			color.Green("fieldroutes listening on %s", address)

			select {
			case err := <-serverErr:
				if !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("http server stopped: %v", err)
				}
			case <-ctx.Done():
				color.Yellow("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := router.Shutdown(shutdownCtx); err != nil {
					logger.Error("graceful shutdown failed", "error", err)
				}
			}
		},
	}
	command.Flags().BoolVar(&migrate, "migrate", false, "apply schema migrations before serving")

	return command
}
