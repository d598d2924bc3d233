package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	hudv1alpha1 "github.com/KirkDiggler/token-action-hud-wng/internal/handlers/hud/v1alpha1"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
)

var (
	rightClick bool
	altKey     bool
	ctrlKey    bool
	shiftKey   bool
)

var clickCmd = &cobra.Command{
	Use:   "click [encoded-value] [actor-id...]",
	Short: "Click an action",
	Long:  `Click an action by its encoded value (for example combat|fear) for one selected actor or several controlled tokens.`,
	Args:  cobra.MinimumNArgs(2),
	RunE:  runClick,
}

func init() {
	clickCmd.Flags().BoolVar(&rightClick, "right", false, "Right click")
	clickCmd.Flags().BoolVar(&altKey, "alt", false, "Hold alt")
	clickCmd.Flags().BoolVar(&ctrlKey, "ctrl", false, "Hold ctrl")
	clickCmd.Flags().BoolVar(&shiftKey, "shift", false, "Hold shift")
}

func runClick(_ *cobra.Command, args []string) error {
	client, cleanup, err := createHudClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	event := host.ClickEvent{
		Button: host.MouseButtonLeft,
		Alt:    altKey,
		Ctrl:   ctrlKey,
		Shift:  shiftKey,
	}
	if rightClick {
		event.Button = host.MouseButtonRight
	}

	log.Printf("Clicking %s for %v on %s...", args[0], args[1:], serverAddr)

	req, err := hudv1alpha1.ToStruct(&hudv1alpha1.HandleClickRequest{
		ActorIDs:     args[1:],
		EncodedValue: args[0],
		Event:        event,
	})
	if err != nil {
		return err
	}

	if _, err := client.HandleClick(ctx, req); err != nil {
		return fmt.Errorf("failed to handle click: %w", err)
	}

	fmt.Println("Click handled")
	return nil
}
