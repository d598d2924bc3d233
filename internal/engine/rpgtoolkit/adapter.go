// Package rpgtoolkit implements the engine contracts on rpg-toolkit for the
// sandbox host: dice pool tests, condition and equip changes, and an
// encounter tracker with Lua end-turn scripts.
package rpgtoolkit

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/token-action-hud-wng/internal/engine"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	actorrepo "github.com/KirkDiggler/token-action-hud-wng/internal/repositories/actor"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/chatlog"
)

// EventTestRolled is published after every test roll
const EventTestRolled = "wng.test_rolled"

// Default stats for item tests whose item names none
const (
	defaultWeaponSkill = "ballisticSkill"
	defaultPowerSkill  = "psychicMastery"
)

// genericTests maps the generic test names to the stat they roll
var genericTests = map[string]string{
	"determination": "toughness",
	"corruption":    "conviction",
	"mutation":      "toughness",
	"fear":          "resolve",
	"terror":        "resolve",
	"influence":     "influence",
}

// Adapter implements engine.GameSystem using rpg-toolkit
type Adapter struct {
	eventBus   events.EventBus
	diceRoller dice.Roller
	actors     actorrepo.Repository
	chat       chatlog.Repository
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
	Actors     actorrepo.Repository
	Chat       chatlog.Repository
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	if c.Actors == nil {
		return errors.InvalidArgument("actor repository is required")
	}
	if c.Chat == nil {
		return errors.InvalidArgument("chat log is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit game system
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		eventBus:   cfg.EventBus,
		diceRoller: cfg.DiceRoller,
		actors:     cfg.Actors,
		chat:       cfg.Chat,
	}, nil
}

// Verify that Adapter implements the engine and host interfaces
var (
	_ engine.GameSystem = (*Adapter)(nil)
	_ host.ItemRenderer = (*Adapter)(nil)
)

// SetupWeaponTest rolls the weapon's skill
func (a *Adapter) SetupWeaponTest(ctx context.Context, actor *wng.Actor, item *wng.Item) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	skill := item.Skill
	if skill == "" {
		skill = defaultWeaponSkill
	}
	return a.statTest(ctx, actor, skill, item.Name)
}

// SetupPowerTest rolls the power's skill, psychic mastery by default
func (a *Adapter) SetupPowerTest(ctx context.Context, actor *wng.Actor, item *wng.Item) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	skill := item.Skill
	if skill == "" {
		skill = defaultPowerSkill
	}
	return a.statTest(ctx, actor, skill, item.Name)
}

// SetupAbilityRoll rolls the ability's own dice
func (a *Adapter) SetupAbilityRoll(ctx context.Context, actor *wng.Actor, item *wng.Item) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	if item.Dice <= 0 {
		return errors.FailedPreconditionf("ability %s has no dice", item.ID)
	}
	return a.roll(ctx, actor, string(item.Type), item.Dice, item.Name)
}

// SetupAttributeTest rolls an attribute
func (a *Adapter) SetupAttributeTest(ctx context.Context, actor *wng.Actor, attributeID string) error {
	return a.statTest(ctx, actor, attributeID, "")
}

// SetupSkillTest rolls a skill
func (a *Adapter) SetupSkillTest(ctx context.Context, actor *wng.Actor, skillID string) error {
	return a.statTest(ctx, actor, skillID, "")
}

// SetupGenericTest rolls one of the named combat tests
func (a *Adapter) SetupGenericTest(ctx context.Context, actor *wng.Actor, test string) error {
	stat, ok := genericTests[test]
	if !ok {
		return errors.InvalidArgumentf("unknown test %q", test)
	}
	return a.statTest(ctx, actor, stat, test)
}

// HasCondition reports whether the condition is active
func (a *Adapter) HasCondition(actor *wng.Actor, conditionID string) bool {
	return actor != nil && actor.HasStatus(conditionID)
}

// AddCondition activates a condition and saves the actor
func (a *Adapter) AddCondition(ctx context.Context, actor *wng.Actor, conditionID string) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}
	if conditionID == "" {
		return errors.InvalidArgument("condition ID is required")
	}
	if actor.HasStatus(conditionID) {
		return nil
	}

	actor.Statuses = append(actor.Statuses, conditionID)
	return a.save(ctx, actor)
}

// RemoveCondition deactivates a condition and saves the actor
func (a *Adapter) RemoveCondition(ctx context.Context, actor *wng.Actor, conditionID string) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}
	if !actor.HasStatus(conditionID) {
		return nil
	}

	actor.Statuses = slices.DeleteFunc(actor.Statuses, func(status string) bool {
		return status == conditionID
	})
	return a.save(ctx, actor)
}

// SendToChat posts the item card to the chat log
func (a *Adapter) SendToChat(ctx context.Context, actor *wng.Actor, item *wng.Item) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}
	if item == nil {
		return errors.InvalidArgument("item is required")
	}

	_, err := a.chat.Append(ctx, chatlog.AppendInput{Message: &wng.ChatMessage{
		ActorID: actor.ID,
		Speaker: actor.Name,
		Kind:    wng.ChatKindItem,
		Content: item.Name,
	}})
	if err != nil {
		return errors.Wrap(err, "failed to post item to chat")
	}
	return nil
}

// RenderItem shows an owned item's sheet as a chat card
func (a *Adapter) RenderItem(ctx context.Context, actor *wng.Actor, itemID string) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}

	item, ok := actor.Item(itemID)
	if !ok {
		return errors.NotFoundf("item %s not owned by actor %s", itemID, actor.ID)
	}

	_, err := a.chat.Append(ctx, chatlog.AppendInput{Message: &wng.ChatMessage{
		ActorID: actor.ID,
		Speaker: actor.Name,
		Kind:    wng.ChatKindSheet,
		Content: item.Name,
	}})
	if err != nil {
		return errors.Wrap(err, "failed to post item sheet")
	}
	return nil
}

// SetEquipped changes the equipped flag of an owned item
func (a *Adapter) SetEquipped(ctx context.Context, actor *wng.Actor, item *wng.Item, equipped bool) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}
	if item == nil {
		return errors.InvalidArgument("item is required")
	}

	owned, ok := actor.Item(item.ID)
	if !ok {
		return errors.NotFoundf("item %s not owned by actor %s", item.ID, actor.ID)
	}
	if !owned.Equippable {
		return errors.FailedPreconditionf("item %s cannot be equipped", item.ID)
	}

	owned.Equipped = equipped
	if owned != item {
		item.Equipped = equipped
	}
	return a.save(ctx, actor)
}

func (a *Adapter) statTest(ctx context.Context, actor *wng.Actor, statID, label string) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}

	stat, ok := actor.Stat(statID)
	if !ok {
		return errors.NotFoundf("actor %s has no stat %s", actor.ID, statID)
	}
	if label == "" {
		label = stat.Label
	}

	return a.roll(ctx, actor, statID, stat.Total, label)
}

func (a *Adapter) roll(ctx context.Context, actor *wng.Actor, test string, pool int, label string) error {
	result, err := rollPool(a.diceRoller, test, pool)
	if err != nil {
		return err
	}

	slog.Debug("rolled test",
		"actor_id", actor.ID,
		"test", test,
		"pool", result.Pool,
		"icons", result.Icons,
		"wrath", result.Wrath,
	)

	_, err = a.chat.Append(ctx, chatlog.AppendInput{Message: &wng.ChatMessage{
		ActorID: actor.ID,
		Speaker: actor.Name,
		Kind:    wng.ChatKindRoll,
		Content: label,
		Roll:    result,
	}})
	if err != nil {
		return errors.Wrap(err, "failed to post roll to chat")
	}

	if err := a.eventBus.Publish(ctx, events.NewGameEvent(EventTestRolled, actor, nil)); err != nil {
		return errors.Wrap(err, "failed to publish roll")
	}
	return nil
}

func (a *Adapter) save(ctx context.Context, actor *wng.Actor) error {
	if _, err := a.actors.Save(ctx, actorrepo.SaveInput{Actor: actor}); err != nil {
		return errors.Wrapf(err, "failed to save actor %s", actor.ID)
	}
	return nil
}
