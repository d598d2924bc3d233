// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
)

// ActorBuilder provides a fluent interface for building test actors
type ActorBuilder struct {
	actor *wng.Actor
}

// NewActorBuilder creates a new builder with minimal defaults
func NewActorBuilder() *ActorBuilder {
	return &ActorBuilder{
		actor: &wng.Actor{
			ID:   "actor-test-123",
			Name: "Test Actor",
			Type: wng.ActorTypeAgent,
		},
	}
}

// WithID sets the actor ID
func (b *ActorBuilder) WithID(id string) *ActorBuilder {
	b.actor.ID = id
	return b
}

// WithName sets the actor name
func (b *ActorBuilder) WithName(name string) *ActorBuilder {
	b.actor.Name = name
	return b
}

// WithType sets the actor type
func (b *ActorBuilder) WithType(actorType wng.ActorType) *ActorBuilder {
	b.actor.Type = actorType
	return b
}

// WithItem adds an item
func (b *ActorBuilder) WithItem(item *wng.Item) *ActorBuilder {
	b.actor.Items = append(b.actor.Items, item)
	return b
}

// WithAttribute adds an attribute
func (b *ActorBuilder) WithAttribute(id string, total int) *ActorBuilder {
	b.actor.Attributes = append(b.actor.Attributes, &wng.Stat{
		ID:    id,
		Label: "ATTRIBUTE." + id,
		Total: total,
	})
	return b
}

// WithSkill adds a skill
func (b *ActorBuilder) WithSkill(id string, total int) *ActorBuilder {
	b.actor.Skills = append(b.actor.Skills, &wng.Stat{
		ID:    id,
		Label: "SKILL." + id,
		Total: total,
	})
	return b
}

// WithStandardStats adds the attributes and skills the generic tests roll
func (b *ActorBuilder) WithStandardStats() *ActorBuilder {
	return b.
		WithAttribute("strength", 3).
		WithAttribute("toughness", 4).
		WithAttribute("agility", 3).
		WithAttribute("initiative", 3).
		WithAttribute("willpower", 3).
		WithAttribute("intellect", 2).
		WithAttribute("fellowship", 2).
		WithSkill("ballisticSkill", 6).
		WithSkill("weaponSkill", 5).
		WithSkill("psychicMastery", 4).
		WithSkill("conviction", 4).
		WithSkill("resolve", 3).
		WithSkill("influence", 3)
}

// WithStatus marks a condition active
func (b *ActorBuilder) WithStatus(id string) *ActorBuilder {
	b.actor.Statuses = append(b.actor.Statuses, id)
	return b
}

// WithScript binds Lua code to a trigger
func (b *ActorBuilder) WithScript(trigger, code string) *ActorBuilder {
	b.actor.Scripts = append(b.actor.Scripts, &wng.Script{
		Trigger: trigger,
		Label:   "Test Script",
		Code:    code,
	})
	return b
}

// Build returns the actor
func (b *ActorBuilder) Build() *wng.Actor {
	return b.actor
}

// Weapon returns an equippable weapon
func Weapon(id, name string, equipped bool) *wng.Item {
	return &wng.Item{
		ID:         id,
		Name:       name,
		Type:       wng.ItemTypeWeapon,
		Equippable: true,
		Equipped:   equipped,
		Skill:      "ballisticSkill",
	}
}
