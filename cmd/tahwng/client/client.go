// Package client provides test commands for the HUD gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	hudv1alpha1 "github.com/KirkDiggler/token-action-hud-wng/internal/handlers/hud/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the HUD service",
	Long:  `Client commands exercise a running HUD server by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50052", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	ClientCmd.AddCommand(listActorsCmd)
	ClientCmd.AddCommand(buildActionsCmd)
	ClientCmd.AddCommand(clickCmd)
	ClientCmd.AddCommand(getLayoutCmd)
	ClientCmd.AddCommand(chatCmd)
}

// createHudClient creates a HUD service client
func createHudClient() (hudv1alpha1.HudServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return hudv1alpha1.NewHudServiceClient(conn), cleanup, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
