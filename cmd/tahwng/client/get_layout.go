package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	hudv1alpha1 "github.com/KirkDiggler/token-action-hud-wng/internal/handlers/hud/v1alpha1"
)

var getLayoutCmd = &cobra.Command{
	Use:   "get-layout",
	Short: "Show the default HUD layout",
	RunE:  runGetLayout,
}

func runGetLayout(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createHudClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting layout from %s...", serverAddr)

	req, err := hudv1alpha1.ToStruct(&hudv1alpha1.GetLayoutRequest{})
	if err != nil {
		return err
	}

	out, err := client.GetLayout(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get layout: %w", err)
	}

	var resp hudv1alpha1.GetLayoutResponse
	if err := hudv1alpha1.FromStruct(out, &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(resp)
	}

	for _, category := range resp.Layout {
		fmt.Printf("%s (%s)\n", category.Name, category.NestID)
		for _, g := range category.Groups {
			fmt.Printf("  %s\n", g.Name)
		}
	}
	fmt.Printf("\n%d groups total\n", len(resp.Groups))

	return nil
}
