package main

import (
	"os"

	"github.com/spf13/cobra"

	"hoteltec/internal/interfaces/cli/migrate"
	"hoteltec/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hoteltec",
		Short: "HotelTec - in-room ordering platform",
		Long:  `HotelTec is a multi-tenant SaaS backend for hotel in-room ordering, with guest storefronts, subscriptions, and an operator console.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
