package main

import (
	"context"
	"fmt"

	"fieldroutes/internal/adapters/out/postgres"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func migrateCmd(loadConfig configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(command *cobra.Command, _ []string) error {
			configs, _, err := loadConfig()
			if err != nil {
				return err
			}

			gormDB, err := postgres.Open(configs.DSN())
			if err != nil {
				return fmt.Errorf("failed to connect database: %w", err)
			}
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			ctx := command.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := postgres.Migrate(ctx, gormDB); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			fmt.Printf("%s schema is up to date\n", color.New(color.FgGreen).Sprint("✓"))
			return nil
		},
	}
}
