// Package engine declares the game-system and combat calls the HUD makes.
// The VTT supplies these in production; rpgtoolkit implements them for the
// sandbox host.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/token-action-hud-wng/internal/engine GameSystem,Combat

import (
	"context"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
)

// GameSystem starts tests and mutates actor state
type GameSystem interface {
	// Tests
	SetupWeaponTest(ctx context.Context, actor *wng.Actor, item *wng.Item) error
	SetupPowerTest(ctx context.Context, actor *wng.Actor, item *wng.Item) error
	SetupAbilityRoll(ctx context.Context, actor *wng.Actor, item *wng.Item) error
	SetupAttributeTest(ctx context.Context, actor *wng.Actor, attributeID string) error
	SetupSkillTest(ctx context.Context, actor *wng.Actor, skillID string) error
	SetupGenericTest(ctx context.Context, actor *wng.Actor, test string) error

	// Conditions
	HasCondition(actor *wng.Actor, conditionID string) bool
	AddCondition(ctx context.Context, actor *wng.Actor, conditionID string) error
	RemoveCondition(ctx context.Context, actor *wng.Actor, conditionID string) error

	// Items
	SendToChat(ctx context.Context, actor *wng.Actor, item *wng.Item) error
	SetEquipped(ctx context.Context, actor *wng.Actor, item *wng.Item, equipped bool) error
}

// Combat is the active encounter's turn state
type Combat interface {
	Started() bool
	// CombatantByActor returns nil when the actor is not in the encounter
	CombatantByActor(actorID string) *Combatant

	SetTurn(ctx context.Context, combatantID string) error
	RunEndTurnScripts(ctx context.Context, combatant *Combatant) error
	SetComplete(ctx context.Context, combatantID string) error
}

// Combatant is a read-only view of one turn slot
type Combatant struct {
	ID         string
	ActorID    string
	Name       string
	IsCurrent  bool
	IsComplete bool
}
