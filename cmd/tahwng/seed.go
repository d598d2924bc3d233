package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/token-action-hud-wng/internal/config"
	"github.com/KirkDiggler/token-action-hud-wng/internal/fixtures"
)

var seedActorsOnly bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the sample party and encounter to redis",
	Long:  `Write the sample party and an active skirmish encounter to the redis stores. Memory stores are seeded on start and need no seeding.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.StoreBackend != config.StoreRedis {
			return fmt.Errorf("seed needs TAH_WNG_STORE=%s, got %q", config.StoreRedis, cfg.StoreBackend)
		}

		st, err := openStores(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() {
			for _, c := range st.closers {
				_ = c()
			}
		}()

		out, err := fixtures.Seed(cmd.Context(), &fixtures.SeedInput{
			Actors:        st.actors,
			Encounters:    st.encounters,
			SkipEncounter: seedActorsOnly,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Seeded %d actors\n", len(out.ActorIDs))
		for _, id := range out.ActorIDs {
			fmt.Printf("  - %s\n", id)
		}
		if out.EncounterID != "" {
			fmt.Printf("Active encounter: %s\n", out.EncounterID)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedActorsOnly, "actors-only", false, "Seed actors without the encounter")
}
