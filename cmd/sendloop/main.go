package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sendloop-inc/sendloop/internal/interfaces/cli/migrate"
	"github.com/sendloop-inc/sendloop/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sendloop",
		Short: "Sendloop - multi-tenant WhatsApp messaging platform",
		Long:  `Sendloop is the messaging platform API server with built-in migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
