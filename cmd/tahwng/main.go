// Package main is the entry point for the HUD server, terminal host and
// test client
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/token-action-hud-wng/cmd/tahwng/client"
	"github.com/KirkDiggler/token-action-hud-wng/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tahwng",
	Short: "Token Action HUD for Wrath & Glory",
	Long:  `tahwng builds the Wrath & Glory action HUD for selected tokens and routes clicks to dice tests, condition toggles and turn tracking.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})))
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
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(hudCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
