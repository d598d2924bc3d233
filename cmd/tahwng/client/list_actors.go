package client

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	hudv1alpha1 "github.com/KirkDiggler/token-action-hud-wng/internal/handlers/hud/v1alpha1"
)

var actorType string

var listActorsCmd = &cobra.Command{
	Use:   "list-actors",
	Short: "List the actors a host can select",
	RunE:  runListActors,
}

func init() {
	listActorsCmd.Flags().StringVar(&actorType, "type", "", "Only list actors of this type (agent, threat, vehicle)")
}

func runListActors(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createHudClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Listing actors from %s...", serverAddr)

	req, err := hudv1alpha1.ToStruct(&hudv1alpha1.ListActorsRequest{Type: wng.ActorType(actorType)})
	if err != nil {
		return err
	}

	out, err := client.ListActors(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list actors: %w", err)
	}

	var resp hudv1alpha1.ListActorsResponse
	if err := hudv1alpha1.FromStruct(out, &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Found %d actors:\n\n", len(resp.Actors))
	for _, a := range resp.Actors {
		fmt.Printf("  %-20s %-24s %s\n", a.ID, a.Name, a.Type)
		if len(a.Statuses) > 0 {
			fmt.Printf("  %-20s conditions: %s\n", "", strings.Join(a.Statuses, ", "))
		}
	}

	return nil
}
