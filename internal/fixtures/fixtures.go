// Package fixtures carries a sample party and encounter for the sandbox
// host
package fixtures

import (
	"context"
	"embed"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/actor"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/encounter"
)

//go:embed data/*.json
var data embed.FS

// Party returns fresh copies of the sample actors
func Party() ([]*wng.Actor, error) {
	var actors []*wng.Actor
	if err := decode("data/party.json", &actors); err != nil {
		return nil, err
	}
	return actors, nil
}

// Encounter returns a fresh copy of the sample encounter
func Encounter() (*wng.Encounter, error) {
	var enc wng.Encounter
	if err := decode("data/encounter.json", &enc); err != nil {
		return nil, err
	}
	return &enc, nil
}

// SeedInput defines the input for seeding stores
type SeedInput struct {
	Actors     actor.Repository
	Encounters encounter.Repository
	// SkipEncounter leaves the encounter store untouched
	SkipEncounter bool
}

// SeedOutput reports what was written
type SeedOutput struct {
	ActorIDs    []string
	EncounterID string
}

// Seed writes the sample party, then the encounter, and marks it active
func Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error) {
	if input == nil || input.Actors == nil {
		return nil, errors.InvalidArgument("actor repository is required")
	}
	if !input.SkipEncounter && input.Encounters == nil {
		return nil, errors.InvalidArgument("encounter repository is required")
	}

	actors, err := Party()
	if err != nil {
		return nil, err
	}

	out := &SeedOutput{}
	for _, a := range actors {
		if _, err := input.Actors.Save(ctx, actor.SaveInput{Actor: a}); err != nil {
			return nil, errors.Wrapf(err, "failed to seed actor %s", a.ID)
		}
		out.ActorIDs = append(out.ActorIDs, a.ID)
	}

	if input.SkipEncounter {
		return out, nil
	}

	enc, err := Encounter()
	if err != nil {
		return nil, err
	}
	if _, err := input.Encounters.Save(ctx, encounter.SaveInput{Encounter: enc}); err != nil {
		return nil, errors.Wrapf(err, "failed to seed encounter %s", enc.ID)
	}
	if _, err := input.Encounters.SetActive(ctx, encounter.SetActiveInput{ID: enc.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to activate encounter")
	}
	out.EncounterID = enc.ID

	slog.Info("seeded sample data", "actors", len(out.ActorIDs), "encounter_id", enc.ID)

	return out, nil
}

func decode(name string, target any) error {
	raw, err := data.ReadFile(name)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to read "+name)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to decode "+name)
	}
	return nil
}
