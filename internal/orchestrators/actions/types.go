package actions

import (
	"github.com/KirkDiggler/token-action-hud-wng/internal/engine"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
)

// BuildInput is everything one render reads
type BuildInput struct {
	// Actor is the single selected actor, nil on multi-select
	Actor *wng.Actor
	// Combat is the active encounter, nil when there is none
	Combat engine.Combat
	// StatusEffects are the condition definitions the game system knows
	StatusEffects []wng.StatusEffect
}

// BuildOutput is the ordered list of addActions calls
type BuildOutput struct {
	Groups []hud.GroupActions
}

// Group returns the actions emitted for a group, nil when it was skipped
func (o *BuildOutput) Group(id hud.GroupID) []hud.Action {
	for _, g := range o.Groups {
		if g.Group.ID == id {
			return g.Actions
		}
	}
	return nil
}

// ActionCount is the total number of actions across all groups
func (o *BuildOutput) ActionCount() int {
	var n int
	for _, g := range o.Groups {
		n += len(g.Actions)
	}
	return n
}
