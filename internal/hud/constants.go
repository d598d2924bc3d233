// Package hud holds the static tables the HUD host renders from: action
// types, group identifiers, the item-type to group mapping and the default
// layout, plus the encoded-value codec that ties a clicked action back to
// its handler.
package hud

import "github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"

// ModuleID is the extension's module identifier and the source of its
// bus events
const ModuleID = "token-action-hud-wng"

// ActionType selects the handler for a clicked action
type ActionType string

// Action types
const (
	ActionTypeCombat    ActionType = "combat"
	ActionTypeAttribute ActionType = "attribute"
	ActionTypeSkill     ActionType = "skill"
	ActionTypeTalent    ActionType = "talent"
	ActionTypeGear      ActionType = "gear"
	ActionTypeCondition ActionType = "condition"
	ActionTypeUtility   ActionType = "utility"
	// ActionTypeItem opens the item sheet instead of dispatching
	ActionTypeItem ActionType = "item"
)

var actionTypes = map[ActionType]struct{}{
	ActionTypeCombat:    {},
	ActionTypeAttribute: {},
	ActionTypeSkill:     {},
	ActionTypeTalent:    {},
	ActionTypeGear:      {},
	ActionTypeCondition: {},
	ActionTypeUtility:   {},
	ActionTypeItem:      {},
}

// Valid reports whether t is a known action type
func (t ActionType) Valid() bool {
	_, ok := actionTypes[t]
	return ok
}

// actionTypeLabels are the i18n keys prefixed onto list names.
// Attribute and skill actions have no prefix.
var actionTypeLabels = map[ActionType]string{
	ActionTypeCombat:    "tokenActionHud.wng.combat",
	ActionTypeTalent:    "TYPES.Item.talent",
	ActionTypeGear:      "TYPES.Item.gear",
	ActionTypeCondition: "tokenActionHud.wng.condition",
	ActionTypeUtility:   "tokenActionHud.utility",
}

// Label returns the i18n key for the type's list-name prefix
func (t ActionType) Label() (string, bool) {
	label, ok := actionTypeLabels[t]
	return label, ok
}

// Utility action IDs
const (
	UtilitySetTurn = "setTurn"
	UtilityEndTurn = "endTurn"
)

// CombatTest is one of the fixed tests every character can roll
type CombatTest struct {
	ID   string
	Name string
}

// CombatTests are always offered in the combatTests group, in this order
var CombatTests = []CombatTest{
	{ID: "determination", Name: "ROLL.DETERMINATION"},
	{ID: "corruption", Name: "ROLL.CORRUPTION"},
	{ID: "mutation", Name: "ROLL.MUTATION"},
	{ID: "fear", Name: "ROLL.FEAR"},
	{ID: "terror", Name: "ROLL.TERROR"},
	{ID: "influence", Name: "ROLL.INFLUENCE"},
}

// CSS classes for toggle actions
const (
	CSSToggle       = "toggle"
	CSSToggleActive = "toggle active"
)

// ToggleClass returns the CSS class for a toggle in the given state
func ToggleClass(active bool) string {
	if active {
		return CSSToggleActive
	}
	return CSSToggle
}

// CombatItemGroups routes combat-eligible item types to their combat group
var CombatItemGroups = map[wng.ItemType]GroupID{
	wng.ItemTypeWeapon:       GroupCombatWeapons,
	wng.ItemTypePsychicPower: GroupCombatPowers,
	wng.ItemTypeAbility:      GroupCombatAbilities,
}

// ItemTypeGroups routes item types to their inventory group. Types not
// listed are not shown.
var ItemTypeGroups = map[wng.ItemType]GroupID{
	wng.ItemTypeAbility:       GroupAbilities,
	wng.ItemTypeAmmo:          GroupAmmo,
	wng.ItemTypeArmour:        GroupArmour,
	wng.ItemTypeAugmetic:      GroupAugmetic,
	wng.ItemTypeGear:          GroupGear,
	wng.ItemTypePsychicPower:  GroupPowers,
	wng.ItemTypeTalent:        GroupTalents,
	wng.ItemTypeWeapon:        GroupWeapons,
	wng.ItemTypeWeaponUpgrade: GroupWeaponUpgrade,
}

// talentItemTypes are listed as talents; every other type is gear
var talentItemTypes = map[wng.ItemType]struct{}{
	wng.ItemTypeTalent:       {},
	wng.ItemTypeAbility:      {},
	wng.ItemTypePsychicPower: {},
}

// InventoryActionType returns the action type an inventory item emits
func InventoryActionType(itemType wng.ItemType) ActionType {
	if _, ok := talentItemTypes[itemType]; ok {
		return ActionTypeTalent
	}
	return ActionTypeGear
}
