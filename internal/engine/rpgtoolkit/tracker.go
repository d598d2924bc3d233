package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/token-action-hud-wng/internal/engine"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	actorrepo "github.com/KirkDiggler/token-action-hud-wng/internal/repositories/actor"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/encounter"
)

// Tracker implements engine.Combat over one stored encounter. Turn order is
// chosen by the players: completing a turn leaves no one current, and once
// every combatant is complete the next round starts.
type Tracker struct {
	encounters encounter.Repository
	actors     actorrepo.Repository
	scripts    *ScriptRunner
	enc        *wng.Encounter
}

// TrackerConfig contains configuration for creating a Tracker
type TrackerConfig struct {
	Encounters encounter.Repository
	Actors     actorrepo.Repository
	Scripts    *ScriptRunner
	Encounter  *wng.Encounter
}

// Validate checks that all required dependencies are provided
func (c *TrackerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Encounters == nil {
		vb.RequiredField("Encounters")
	}
	if c.Actors == nil {
		vb.RequiredField("Actors")
	}
	if c.Scripts == nil {
		vb.RequiredField("Scripts")
	}
	if c.Encounter == nil {
		vb.RequiredField("Encounter")
	}

	return vb.Build()
}

// NewTracker creates a tracker for an encounter
func NewTracker(cfg *TrackerConfig) (*Tracker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Tracker{
		encounters: cfg.Encounters,
		actors:     cfg.Actors,
		scripts:    cfg.Scripts,
		enc:        cfg.Encounter,
	}, nil
}

var _ engine.Combat = (*Tracker)(nil)

// Encounter returns the tracked encounter
func (t *Tracker) Encounter() *wng.Encounter {
	return t.enc
}

// Started reports whether the encounter has begun
func (t *Tracker) Started() bool {
	return t.enc.Started
}

// CombatantByActor returns the actor's turn slot, nil when absent
func (t *Tracker) CombatantByActor(actorID string) *engine.Combatant {
	c := t.enc.CombatantByActor(actorID)
	if c == nil {
		return nil
	}
	return t.view(c)
}

// SetTurn makes the combatant current
func (t *Tracker) SetTurn(ctx context.Context, combatantID string) error {
	c := t.enc.Combatant(combatantID)
	if c == nil {
		return errors.NotFoundf("combatant %s not found", combatantID)
	}
	if c.Complete {
		return errors.FailedPreconditionf("combatant %s already acted this round", combatantID)
	}

	t.enc.CurrentID = c.ID
	slog.Info("turn started", "encounter_id", t.enc.ID, "combatant_id", c.ID, "round", t.enc.Round)

	return t.save(ctx)
}

// RunEndTurnScripts runs the combatant's actor end-turn scripts
func (t *Tracker) RunEndTurnScripts(ctx context.Context, combatant *engine.Combatant) error {
	if combatant == nil {
		return errors.InvalidArgument("combatant is required")
	}

	out, err := t.actors.Get(ctx, actorrepo.GetInput{ID: combatant.ActorID})
	if err != nil {
		return errors.Wrapf(err, "failed to load actor for combatant %s", combatant.ID)
	}

	return t.scripts.Run(ctx, out.Actor, wng.ScriptTriggerEndTurn)
}

// SetComplete marks the combatant done for the round
func (t *Tracker) SetComplete(ctx context.Context, combatantID string) error {
	c := t.enc.Combatant(combatantID)
	if c == nil {
		return errors.NotFoundf("combatant %s not found", combatantID)
	}

	c.Complete = true
	if t.enc.CurrentID == c.ID {
		t.enc.CurrentID = ""
	}

	if t.roundComplete() {
		t.enc.Round++
		for _, other := range t.enc.Combatants {
			other.Complete = false
		}
		slog.Info("round started", "encounter_id", t.enc.ID, "round", t.enc.Round)
	}

	return t.save(ctx)
}

func (t *Tracker) roundComplete() bool {
	for _, c := range t.enc.Combatants {
		if !c.Complete {
			return false
		}
	}
	return true
}

func (t *Tracker) view(c *wng.Combatant) *engine.Combatant {
	return &engine.Combatant{
		ID:         c.ID,
		ActorID:    c.ActorID,
		Name:       c.Name,
		IsCurrent:  t.enc.IsCurrent(c.ID),
		IsComplete: c.Complete,
	}
}

func (t *Tracker) save(ctx context.Context) error {
	if _, err := t.encounters.Save(ctx, encounter.SaveInput{Encounter: t.enc}); err != nil {
		return errors.Wrapf(err, "failed to save encounter %s", t.enc.ID)
	}
	return nil
}
