// Package wng holds the Wrath & Glory character-sheet data the HUD reads.
// The game system owns these objects; the HUD only reads them and asks the
// game system to change them.
package wng

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// ActorType tags what kind of sheet an actor has
type ActorType string

// Actor types
const (
	ActorTypeAgent   ActorType = "agent"
	ActorTypeThreat  ActorType = "threat"
	ActorTypeVehicle ActorType = "vehicle"
)

// Actor is a character, threat or vehicle
type Actor struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       ActorType `json:"type"`
	Img        string    `json:"img,omitempty"`
	Items      []*Item   `json:"items,omitempty"`
	Attributes []*Stat   `json:"attributes,omitempty"`
	Skills     []*Stat   `json:"skills,omitempty"`
	Statuses   []string  `json:"statuses,omitempty"`
	Scripts    []*Script `json:"scripts,omitempty"`
}

// Stat is an attribute or skill with its computed total
type Stat struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Total int    `json:"total"`
	Img   string `json:"img,omitempty"`
}

// Script is Lua code the game system runs on a trigger
type Script struct {
	Trigger string `json:"trigger"`
	Label   string `json:"label,omitempty"`
	Code    string `json:"code"`
}

// ScriptTriggerEndTurn fires when the actor's combatant ends its turn
const ScriptTriggerEndTurn = "endTurn"

var _ core.Entity = (*Actor)(nil)

// GetID returns the actor ID
func (a *Actor) GetID() string {
	return a.ID
}

// GetType returns the actor type
func (a *Actor) GetType() string {
	return string(a.Type)
}

// Item finds an owned item by ID
func (a *Actor) Item(id string) (*Item, bool) {
	for _, item := range a.Items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// Stat finds an attribute or skill by ID, attributes first
func (a *Actor) Stat(id string) (*Stat, bool) {
	for _, stat := range a.Attributes {
		if stat.ID == id {
			return stat, true
		}
	}
	for _, stat := range a.Skills {
		if stat.ID == id {
			return stat, true
		}
	}
	return nil, false
}

// HasStatus reports whether the status is active on the actor
func (a *Actor) HasStatus(id string) bool {
	return slices.Contains(a.Statuses, id)
}

// ScriptsFor returns the scripts bound to a trigger
func (a *Actor) ScriptsFor(trigger string) []*Script {
	var out []*Script
	for _, script := range a.Scripts {
		if script.Trigger == trigger {
			out = append(out, script)
		}
	}
	return out
}
