// Package roll routes HUD clicks to game-system calls
package roll

//go:generate mockgen -destination=mock/mock_router.go -package=rollmock github.com/KirkDiggler/token-action-hud-wng/internal/orchestrators/roll ClickRouter

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/KirkDiggler/token-action-hud-wng/internal/engine"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
)

var tracer = otel.Tracer("github.com/KirkDiggler/token-action-hud-wng/internal/orchestrators/roll")

// ClickRouter handles the host's click callbacks
type ClickRouter interface {
	HandleActionClick(ctx context.Context, input *ClickInput) error
	HandleActionHover(ctx context.Context, input *HoverInput) error
	HandleGroupClick(ctx context.Context, input *GroupClickInput) error
}

// DefaultFanOutActorTypes are the actor types a multi-token click reaches
var DefaultFanOutActorTypes = []wng.ActorType{wng.ActorTypeAgent}

// Config holds the dependencies for the click router
type Config struct {
	GameSystem engine.GameSystem
	Refresher  host.Refresher
	// ItemRenderer is optional; without it item actions are never rendered
	ItemRenderer host.ItemRenderer

	RenderItemOnRightClick bool
	// FanOutActorTypes defaults to DefaultFanOutActorTypes when empty
	FanOutActorTypes []wng.ActorType
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameSystem == nil {
		vb.RequiredField("GameSystem")
	}
	if c.Refresher == nil {
		vb.RequiredField("Refresher")
	}
	for _, actorType := range c.FanOutActorTypes {
		errors.ValidateEnum("FanOutActorTypes", string(actorType), []string{
			string(wng.ActorTypeAgent),
			string(wng.ActorTypeThreat),
			string(wng.ActorTypeVehicle),
		}, vb)
	}

	return vb.Build()
}

type orchestrator struct {
	game                   engine.GameSystem
	refresher              host.Refresher
	renderer               host.ItemRenderer
	renderItemOnRightClick bool
	fanOut                 map[wng.ActorType]struct{}
}

// renderable action types open the item sheet instead of dispatching
var renderable = map[hud.ActionType]struct{}{
	hud.ActionTypeItem: {},
}

// NewOrchestrator creates a new click router
func NewOrchestrator(cfg *Config) (ClickRouter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	types := cfg.FanOutActorTypes
	if len(types) == 0 {
		types = DefaultFanOutActorTypes
	}
	fanOut := make(map[wng.ActorType]struct{}, len(types))
	for _, t := range types {
		fanOut[t] = struct{}{}
	}

	return &orchestrator{
		game:                   cfg.GameSystem,
		refresher:              cfg.Refresher,
		renderer:               cfg.ItemRenderer,
		renderItemOnRightClick: cfg.RenderItemOnRightClick,
		fanOut:                 fanOut,
	}, nil
}

// HandleActionClick decodes the clicked value and runs it for the selected
// actor, or for every eligible controlled token in order
func (o *orchestrator) HandleActionClick(ctx context.Context, input *ClickInput) (err error) {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	ctx, span := tracer.Start(ctx, "roll.HandleActionClick")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	actionType, id, err := hud.Decode(input.EncodedValue)
	if err != nil {
		return err
	}

	span.SetAttributes(
		attribute.String("hud.action_type", string(actionType)),
		attribute.String("hud.action_id", id),
	)

	if o.isRenderItem(actionType, input.Event) {
		if input.Actor == nil {
			slog.Warn("cannot render item without a selected actor", "item_id", id)
			return nil
		}
		if err := o.renderer.RenderItem(ctx, input.Actor, id); err != nil {
			return errors.Wrapf(err, "failed to render item %s", id)
		}
		return nil
	}

	if input.Actor != nil {
		return o.handleAction(ctx, input, input.Actor, actionType, id)
	}

	for _, token := range input.Controlled {
		if token == nil || token.Actor == nil {
			continue
		}
		if _, ok := o.fanOut[token.Actor.Type]; !ok {
			continue
		}

		slog.Debug("dispatching click to controlled token",
			"token_id", token.ID,
			"actor_id", token.Actor.ID,
			"action_type", actionType,
		)

		if err := o.handleAction(ctx, input, token.Actor, actionType, id); err != nil {
			return err
		}
	}

	return nil
}

// HandleActionHover does nothing
func (o *orchestrator) HandleActionHover(_ context.Context, _ *HoverInput) error {
	return nil
}

// HandleGroupClick does nothing
func (o *orchestrator) HandleGroupClick(_ context.Context, _ *GroupClickInput) error {
	return nil
}

func (o *orchestrator) isRenderItem(actionType hud.ActionType, event host.ClickEvent) bool {
	if _, ok := renderable[actionType]; !ok {
		return false
	}
	return o.renderer != nil &&
		o.renderItemOnRightClick &&
		event.IsRightClick() &&
		!event.HasModifier()
}

func (o *orchestrator) handleAction(
	ctx context.Context,
	input *ClickInput,
	actor *wng.Actor,
	actionType hud.ActionType,
	id string,
) error {
	switch actionType {
	case hud.ActionTypeCombat:
		return o.handleCombatAction(ctx, actor, id)
	case hud.ActionTypeAttribute:
		return wrapHostErr(o.game.SetupAttributeTest(ctx, actor, id), "attribute test")
	case hud.ActionTypeSkill:
		return wrapHostErr(o.game.SetupSkillTest(ctx, actor, id), "skill test")
	case hud.ActionTypeTalent, hud.ActionTypeGear:
		return o.handleItemAction(ctx, input.Event, actor, id)
	case hud.ActionTypeCondition:
		return o.handleConditionAction(ctx, actor, id)
	case hud.ActionTypeUtility:
		return o.handleUtilityAction(ctx, input.Combat, actor, id)
	case hud.ActionTypeItem:
		slog.Debug("item action not rendered", "actor_id", actor.ID, "item_id", id)
		return nil
	default:
		return errors.Internalf("unhandled action type %q", actionType)
	}
}

// handleCombatAction rolls for an owned item, or treats id as a generic
// test name when no item matches
func (o *orchestrator) handleCombatAction(ctx context.Context, actor *wng.Actor, id string) error {
	item, found := actor.Item(id)
	itemType := wng.ItemType(id)
	if found {
		itemType = item.Type
	}

	switch itemType {
	case wng.ItemTypeWeapon, wng.ItemTypePsychicPower, wng.ItemTypeAbility:
		if !found {
			slog.Warn("combat action names an item type but no item", "actor_id", actor.ID, "id", id)
			return nil
		}
	}

	switch itemType {
	case wng.ItemTypeWeapon:
		return wrapHostErr(o.game.SetupWeaponTest(ctx, actor, item), "weapon test")
	case wng.ItemTypePsychicPower:
		return wrapHostErr(o.game.SetupPowerTest(ctx, actor, item), "power test")
	case wng.ItemTypeAbility:
		return wrapHostErr(o.game.SetupAbilityRoll(ctx, actor, item), "ability roll")
	default:
		return wrapHostErr(o.game.SetupGenericTest(ctx, actor, string(itemType)), "generic test")
	}
}

// handleItemAction posts the item to chat on left click and toggles
// equipped on right click
func (o *orchestrator) handleItemAction(ctx context.Context, event host.ClickEvent, actor *wng.Actor, id string) error {
	item, found := actor.Item(id)
	if !found {
		slog.Warn("clicked item not found", "actor_id", actor.ID, "item_id", id)
		return nil
	}

	if !event.IsRightClick() {
		return wrapHostErr(o.game.SendToChat(ctx, actor, item), "send to chat")
	}

	if !item.Equippable {
		return nil
	}

	if err := o.game.SetEquipped(ctx, actor, item, !item.Equipped); err != nil {
		return errors.Wrap(err, "failed to toggle equipped")
	}
	return o.forceUpdate(ctx)
}

func (o *orchestrator) handleConditionAction(ctx context.Context, actor *wng.Actor, conditionID string) error {
	var err error
	if o.game.HasCondition(actor, conditionID) {
		err = o.game.RemoveCondition(ctx, actor, conditionID)
	} else {
		err = o.game.AddCondition(ctx, actor, conditionID)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to toggle condition %s", conditionID)
	}

	return o.forceUpdate(ctx)
}

func (o *orchestrator) handleUtilityAction(ctx context.Context, combat engine.Combat, actor *wng.Actor, id string) error {
	if combat == nil || !combat.Started() {
		slog.Debug("utility action without a started combat", "actor_id", actor.ID, "id", id)
		return nil
	}

	combatant := combat.CombatantByActor(actor.ID)
	if combatant == nil {
		slog.Debug("actor has no combatant", "actor_id", actor.ID)
		return nil
	}

	switch id {
	case hud.UtilitySetTurn:
		if combatant.IsCurrent || combatant.IsComplete {
			return nil
		}
		if err := combat.SetTurn(ctx, combatant.ID); err != nil {
			return errors.Wrap(err, "failed to set turn")
		}
	case hud.UtilityEndTurn:
		if !combatant.IsCurrent {
			return nil
		}
		if err := combat.RunEndTurnScripts(ctx, combatant); err != nil {
			return errors.Wrap(err, "failed to run end turn scripts")
		}
		if err := combat.SetComplete(ctx, combatant.ID); err != nil {
			return errors.Wrap(err, "failed to complete turn")
		}
	default:
		slog.Warn("unknown utility action", "id", id)
		return nil
	}

	return o.forceUpdate(ctx)
}

func (o *orchestrator) forceUpdate(ctx context.Context) error {
	if err := o.refresher.ForceUpdate(ctx); err != nil {
		return errors.Wrap(err, "failed to refresh hud")
	}
	return nil
}

// wrapHostErr wraps a failed game-system call; nil stays nil
func wrapHostErr(err error, what string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, what+" failed")
}
