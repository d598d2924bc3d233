package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/token-action-hud-wng/internal/tui"
)

var hudLogFile string

var hudCmd = &cobra.Command{
	Use:   "hud",
	Short: "Run the HUD in the terminal",
	Long:  `Run the HUD against the configured stores in a terminal UI. Space controls tokens, enter clicks and r right-clicks.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// The alt screen owns stderr while the program runs
		logFile, err := tea.LogToFile(hudLogFile, "tahwng")
		if err != nil {
			return err
		}
		defer logFile.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})))

		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		return tui.Run(cmd.Context(), a.bridge, a.refresher)
	},
}

func init() {
	hudCmd.Flags().StringVar(&hudLogFile, "log-file", "tahwng-hud.log", "File the HUD logs to while running")
}
