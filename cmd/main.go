package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version проставляется при сборке через -ldflags "-X main.version=..."
var version = "dev"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "appointment-service",
		Short:         "MedConnect appointment service",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to TOML config (CONFIG_PATH overrides)")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(migrateCmd(&configPath))
	rootCmd.AddCommand(seedCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
