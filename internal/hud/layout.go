package hud

import "github.com/KirkDiggler/token-action-hud-wng/internal/host"

// Category is a top-level HUD tab with its nested groups
type Category struct {
	NestID string  `json:"nestId"`
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Groups []Group `json:"groups"`
}

// Defaults is the default layout plus the flat group list the host
// registers
type Defaults struct {
	Layout []Category `json:"layout"`
	Groups []Group    `json:"groups"`
}

type categoryDef struct {
	id     string
	name   string
	groups []GroupID
}

var categoryLayout = []categoryDef{
	{id: "stats", name: "tokenActionHud.wng.stats", groups: []GroupID{GroupAttributes, GroupSkills}},
	{id: "combat", name: "tokenActionHud.wng.combat", groups: []GroupID{
		GroupCombatWeapons, GroupCombatPowers, GroupCombatAbilities, GroupCombatTests,
	}},
	{id: "talents", name: "tokenActionHud.wng.talents", groups: []GroupID{GroupTalents, GroupAbilities, GroupPowers}},
	{id: "gear", name: "tokenActionHud.wng.gear", groups: []GroupID{
		GroupWeapons, GroupArmour, GroupGear, GroupAmmo, GroupWeaponUpgrade, GroupAugmetic,
	}},
	{id: "conditions", name: "tokenActionHud.wng.conditions", groups: []GroupID{GroupConditions}},
	{id: "utility", name: "tokenActionHud.utility", groups: []GroupID{GroupCombat, GroupToken, GroupRests, GroupUtility}},
}

// DefaultLayout builds the localized default layout
func DefaultLayout(loc host.Localizer) *Defaults {
	localized := make(map[GroupID]Group, len(Groups))
	groups := make([]Group, 0, len(Groups))
	for _, g := range Groups {
		g.Name = loc.Localize(g.Name)
		g.ListName = "Group: " + g.Name
		localized[g.ID] = g
		groups = append(groups, g)
	}

	layout := make([]Category, 0, len(categoryLayout))
	for _, def := range categoryLayout {
		category := Category{
			NestID: def.id,
			ID:     def.id,
			Name:   loc.Localize(def.name),
			Groups: make([]Group, 0, len(def.groups)),
		}
		for _, id := range def.groups {
			g := localized[id]
			g.NestID = def.id + "_" + string(id)
			category.Groups = append(category.Groups, g)
		}
		layout = append(layout, category)
	}

	return &Defaults{
		Layout: layout,
		Groups: groups,
	}
}

// GroupOrder returns every group ID in layout order. Builders use it to emit
// groups deterministically.
func GroupOrder() []GroupID {
	var order []GroupID
	for _, def := range categoryLayout {
		order = append(order, def.groups...)
	}
	return order
}
