// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/monster-api/cmd/server/client"
	"github.com/KirkDiggler/monster-api/internal/config"
)

var (
	envFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "monster-api",
	Short: "Monster API gRPC Server",
	Long:  `Monster API serves the technique catalog, random technique learning and the tuxepedia over gRPC.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadDotEnv(envFile)
		if err != nil {
			return err
		}

		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.LogLevel,
		})))
		if loaded {
			slog.Debug("Loaded env file", "file", envFile)
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional env file loaded before reading the environment")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
