package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/token-action-hud-wng/internal/engine"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	actorrepo "github.com/KirkDiggler/token-action-hud-wng/internal/repositories/actor"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/encounter"
)

// TrackerLoader opens a Tracker on whichever encounter is active
type TrackerLoader struct {
	encounters encounter.Repository
	actors     actorrepo.Repository
	scripts    *ScriptRunner
}

// TrackerLoaderConfig contains configuration for creating a TrackerLoader
type TrackerLoaderConfig struct {
	Encounters encounter.Repository
	Actors     actorrepo.Repository
	Scripts    *ScriptRunner
}

// NewTrackerLoader creates a new loader
func NewTrackerLoader(cfg *TrackerLoaderConfig) (*TrackerLoader, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Encounters == nil {
		vb.RequiredField("Encounters")
	}
	if cfg.Actors == nil {
		vb.RequiredField("Actors")
	}
	if cfg.Scripts == nil {
		vb.RequiredField("Scripts")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &TrackerLoader{
		encounters: cfg.Encounters,
		actors:     cfg.Actors,
		scripts:    cfg.Scripts,
	}, nil
}

// ActiveCombat returns a tracker for the active encounter, or nil when no
// encounter is active
func (l *TrackerLoader) ActiveCombat(ctx context.Context) (engine.Combat, error) {
	out, err := l.encounters.GetActive(ctx, encounter.GetActiveInput{})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to load active encounter")
	}

	tracker, err := NewTracker(&TrackerConfig{
		Encounters: l.encounters,
		Actors:     l.actors,
		Scripts:    l.scripts,
		Encounter:  out.Encounter,
	})
	if err != nil {
		return nil, err
	}
	return tracker, nil
}
