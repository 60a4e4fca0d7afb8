package main

import (
	"fmt"
	"log/slog"
	"os"
	_ "time/tzdata"

	"fieldroutes/cmd"

	"github.com/spf13/cobra"
)

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "fieldroutes",
		Short:         "Work order routing backend for field technicians",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	loadConfig := func() (cmd.Config, *slog.Logger, error) {
		configs, err := cmd.LoadConfig(envFile)
		if err != nil {
			return cmd.Config{}, nil, err
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
		return configs, logger, nil
	}

	rootCmd.AddCommand(serveCmd(loadConfig))
	rootCmd.AddCommand(migrateCmd(loadConfig))
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type configLoader func() (cmd.Config, *slog.Logger, error)
