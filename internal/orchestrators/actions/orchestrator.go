// Package actions builds the HUD action tree for the selected actor
package actions

//go:generate mockgen -destination=mock/mock_source.go -package=actionsmock github.com/KirkDiggler/token-action-hud-wng/internal/orchestrators/actions ActionSource

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/token-action-hud-wng/internal/engine"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
)

var tracer = otel.Tracer("github.com/KirkDiggler/token-action-hud-wng/internal/orchestrators/actions")

// ActionSource builds the system actions for one HUD render
type ActionSource interface {
	BuildSystemActions(ctx context.Context, input *BuildInput) (*BuildOutput, error)
}

// Config holds the dependencies for the action builder
type Config struct {
	Localizer host.Localizer
	Images    host.ImageResolver

	// DisplayUnequipped lists unequipped weapons in the combat category too
	DisplayUnequipped bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Localizer == nil {
		vb.RequiredField("Localizer")
	}
	if c.Images == nil {
		vb.RequiredField("Images")
	}

	return vb.Build()
}

type orchestrator struct {
	loc               host.Localizer
	images            host.ImageResolver
	displayUnequipped bool
}

// characterTypes get the full action tree; anything else gets none
var characterTypes = map[wng.ActorType]struct{}{
	wng.ActorTypeAgent:  {},
	wng.ActorTypeThreat: {},
}

// NewOrchestrator creates a new action builder
func NewOrchestrator(cfg *Config) (ActionSource, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		loc:               cfg.Localizer,
		images:            cfg.Images,
		displayUnequipped: cfg.DisplayUnequipped,
	}, nil
}

// BuildSystemActions emits every category for a single agent or threat.
// Multi-select and vehicles produce an empty tree.
func (o *orchestrator) BuildSystemActions(ctx context.Context, input *BuildInput) (*BuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, span := tracer.Start(ctx, "actions.BuildSystemActions")
	defer span.End()

	actor := input.Actor
	if actor == nil {
		slog.Debug("no single actor selected, skipping build")
		return &BuildOutput{}, nil
	}

	span.SetAttributes(
		attribute.String("actor.id", actor.ID),
		attribute.String("actor.type", string(actor.Type)),
	)

	if _, ok := characterTypes[actor.Type]; !ok {
		slog.Debug("actor type has no hud actions", "actor_id", actor.ID, "actor_type", actor.Type)
		return &BuildOutput{}, nil
	}

	b := &builder{
		orchestrator: o,
		actor:        actor,
		items:        o.sortedItems(actor),
		groups:       make(map[hud.GroupID][]hud.Action),
	}

	b.buildCombat()
	b.buildStats()
	b.buildInventory()
	b.buildConditions(input.StatusEffects)
	b.buildUtility(input.Combat)

	output := &BuildOutput{}
	for _, groupID := range hud.GroupOrder() {
		actions := b.groups[groupID]
		if len(actions) == 0 {
			continue
		}
		output.Groups = append(output.Groups, hud.GroupActions{
			Group:   hud.SystemGroup(groupID),
			Actions: actions,
		})
	}

	span.SetAttributes(attribute.Int("hud.groups", len(output.Groups)))
	slog.Debug("built hud actions",
		"actor_id", actor.ID,
		"groups", len(output.Groups),
	)

	return output, nil
}

// sortedItems returns the actor's addressable items ordered by name
func (o *orchestrator) sortedItems(actor *wng.Actor) []*wng.Item {
	items := make([]*wng.Item, 0, len(actor.Items))
	for _, item := range actor.Items {
		if item == nil {
			continue
		}
		if item.ID == "" || strings.Contains(item.ID, hud.Delimiter) {
			slog.Warn("skipping item with unencodable id",
				"actor_id", actor.ID,
				"item_id", item.ID,
				"item_name", item.Name,
			)
			continue
		}
		items = append(items, item)
	}

	slices.SortStableFunc(items, func(a, b *wng.Item) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return items
}

// builder collects actions per group for one build
type builder struct {
	*orchestrator
	actor  *wng.Actor
	items  []*wng.Item
	groups map[hud.GroupID][]hud.Action
}

func (b *builder) add(groupID hud.GroupID, action hud.Action) {
	b.groups[groupID] = append(b.groups[groupID], action)
}

// action assembles a descriptor; ids that cannot be encoded are logged and
// skipped
func (b *builder) action(actionType hud.ActionType, id, name, img, cssClass string) (hud.Action, bool) {
	encoded, err := hud.Encode(actionType, id)
	if err != nil {
		slog.Warn("skipping action", "action_type", actionType, "id", id, "error", err)
		return hud.Action{}, false
	}

	var typeName string
	if label, ok := actionType.Label(); ok {
		typeName = b.loc.Localize(label)
	}

	return hud.Action{
		ID:           id,
		Name:         name,
		ListName:     hud.ListName(typeName, name),
		EncodedValue: encoded,
		Img:          b.images.Image(img),
		CSSClass:     cssClass,
	}, true
}

func (b *builder) buildCombat() {
	for _, item := range b.items {
		groupID, ok := hud.CombatItemGroups[item.Type]
		if !ok {
			continue
		}
		if item.Type == wng.ItemTypeWeapon && !item.Equipped && !b.displayUnequipped {
			continue
		}
		if action, ok := b.action(hud.ActionTypeCombat, item.ID, item.Name, item.Img, ""); ok {
			b.add(groupID, action)
		}
	}

	for _, test := range hud.CombatTests {
		if action, ok := b.action(hud.ActionTypeCombat, test.ID, b.loc.Localize(test.Name), "", ""); ok {
			b.add(hud.GroupCombatTests, action)
		}
	}
}

func (b *builder) buildStats() {
	b.buildStatGroup(hud.ActionTypeAttribute, hud.GroupAttributes, b.actor.Attributes)
	b.buildStatGroup(hud.ActionTypeSkill, hud.GroupSkills, b.actor.Skills)
}

func (b *builder) buildStatGroup(actionType hud.ActionType, groupID hud.GroupID, stats []*wng.Stat) {
	for _, stat := range stats {
		if stat == nil {
			continue
		}
		name := fmt.Sprintf("%s (%d)", b.loc.Localize(stat.Label), stat.Total)
		if action, ok := b.action(actionType, stat.ID, name, stat.Img, ""); ok {
			b.add(groupID, action)
		}
	}
}

// buildInventory lists carried items; stowed items stay off the HUD
func (b *builder) buildInventory() {
	for _, item := range b.items {
		groupID, ok := hud.ItemTypeGroups[item.Type]
		if !ok || item.Stowed() {
			continue
		}

		actionType := hud.InventoryActionType(item.Type)
		var cssClass string
		if actionType == hud.ActionTypeGear {
			cssClass = hud.ToggleClass(item.Equipped)
		}

		if action, ok := b.action(actionType, item.ID, item.Name, item.Img, cssClass); ok {
			b.add(groupID, action)
		}
	}
}

func (b *builder) buildConditions(effects []wng.StatusEffect) {
	for _, effect := range effects {
		if effect.ID == "" {
			continue
		}
		cssClass := hud.ToggleClass(b.actor.HasStatus(effect.ID))
		if action, ok := b.action(hud.ActionTypeCondition, effect.ID, b.loc.Localize(effect.Name), effect.Img, cssClass); ok {
			b.add(hud.GroupConditions, action)
		}
	}
}

func (b *builder) buildUtility(combat engine.Combat) {
	if combat == nil || !combat.Started() {
		return
	}

	combatant := combat.CombatantByActor(b.actor.ID)
	if combatant == nil {
		return
	}

	if !combatant.IsCurrent && !combatant.IsComplete {
		if action, ok := b.action(hud.ActionTypeUtility, hud.UtilitySetTurn, b.loc.Localize("tokenActionHud.wng.activate"), "", ""); ok {
			b.add(hud.GroupCombat, action)
		}
	}
	if combatant.IsCurrent {
		if action, ok := b.action(hud.ActionTypeUtility, hud.UtilityEndTurn, b.loc.Localize("tokenActionHud.wng.deactivate"), "", ""); ok {
			b.add(hud.GroupCombat, action)
		}
	}
}
