package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	hudv1alpha1 "github.com/KirkDiggler/token-action-hud-wng/internal/handlers/hud/v1alpha1"
)

var (
	chatActorID string
	chatLimit   int
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Show the newest chat messages",
	Long:  `Chat lists rolls, item posts and script output newest first.`,
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatActorID, "actor", "", "Only show messages from this actor")
	chatCmd.Flags().IntVar(&chatLimit, "limit", 20, "Maximum messages to show")
}

func runChat(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createHudClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Reading chat from %s...", serverAddr)

	req, err := hudv1alpha1.ToStruct(&hudv1alpha1.ListChatRequest{ActorID: chatActorID, Limit: chatLimit})
	if err != nil {
		return err
	}

	out, err := client.ListChat(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list chat: %w", err)
	}

	var resp hudv1alpha1.ListChatResponse
	if err := hudv1alpha1.FromStruct(out, &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	if len(resp.Messages) == 0 {
		fmt.Println("No chat messages")
		return nil
	}

	for _, msg := range resp.Messages {
		fmt.Printf("[%s] %-20s %-7s %s\n", msg.CreatedAt.Format("15:04:05"), msg.Speaker, msg.Kind, msg.Content)
		if r := msg.Roll; r != nil {
			fmt.Printf("  pool %d dice %v wrath %d => %d icons", r.Pool, r.Dice, r.Wrath, r.Icons)
			switch {
			case r.Critical:
				fmt.Print(" (critical)")
			case r.Complication:
				fmt.Print(" (complication)")
			}
			fmt.Println()
		}
	}

	return nil
}
