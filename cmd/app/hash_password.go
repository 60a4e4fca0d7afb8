package main

import (
	"fmt"

	"fieldroutes/internal/core/domain/model/technician"

	"github.com/spf13/cobra"
)

// hashPasswordCmd prints a bcrypt hash for seeding technician credentials.
func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a technician password",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			hash, err := technician.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(command.OutOrStdout(), hash)
			return nil
		},
	}
}
