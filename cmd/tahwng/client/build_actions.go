package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	hudv1alpha1 "github.com/KirkDiggler/token-action-hud-wng/internal/handlers/hud/v1alpha1"
)

var buildActionsCmd = &cobra.Command{
	Use:   "build-actions [actor-id...]",
	Short: "Build the action tree for a selection",
	Long:  `Build the action tree for one selected actor, or for several controlled tokens when more than one id is given.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBuildActions,
}

func runBuildActions(_ *cobra.Command, args []string) error {
	client, cleanup, err := createHudClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Building actions for %v from %s...", args, serverAddr)

	req, err := hudv1alpha1.ToStruct(&hudv1alpha1.BuildActionsRequest{ActorIDs: args})
	if err != nil {
		return err
	}

	out, err := client.BuildActions(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to build actions: %w", err)
	}

	var resp hudv1alpha1.BuildActionsResponse
	if err := hudv1alpha1.FromStruct(out, &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	for _, g := range resp.Groups {
		fmt.Printf("%s (%d)\n", g.Group.ID, len(g.Actions))
		for _, a := range g.Actions {
			marker := ""
			if a.CSSClass != "" {
				marker = " [" + a.CSSClass + "]"
			}
			fmt.Printf("  %-36s %s%s\n", a.EncodedValue, a.ListName, marker)
		}
	}

	return nil
}
