package hud

// GroupID identifies a bucket actions are placed into
type GroupID string

// Group IDs
const (
	GroupCombatWeapons   GroupID = "combatWeapons"
	GroupCombatPowers    GroupID = "combatPowers"
	GroupCombatAbilities GroupID = "combatAbilities"
	GroupCombatTests     GroupID = "combatTests"

	GroupAttributes GroupID = "attributes"
	GroupSkills     GroupID = "skills"

	GroupTalents   GroupID = "talents"
	GroupAbilities GroupID = "abilities"
	GroupPowers    GroupID = "powers"

	GroupArmour        GroupID = "armour"
	GroupGear          GroupID = "gear"
	GroupAmmo          GroupID = "ammo"
	GroupWeapons       GroupID = "weapons"
	GroupWeaponUpgrade GroupID = "weaponUpgrade"
	GroupAugmetic      GroupID = "augmetic"

	GroupConditions GroupID = "conditions"

	GroupCombat  GroupID = "combat"
	GroupToken   GroupID = "token"
	GroupRests   GroupID = "rests"
	GroupUtility GroupID = "utility"
)

// GroupTypeSystem marks groups declared by the game-system extension
const GroupTypeSystem = "system"

// Group is a declared group with its display name
type Group struct {
	ID       GroupID `json:"id"`
	Name     string  `json:"name"`
	ListName string  `json:"listName,omitempty"`
	Type     string  `json:"type"`
	NestID   string  `json:"nestId,omitempty"`
}

// Groups is every declared group, in declaration order. Names are i18n keys.
var Groups = []Group{
	{ID: GroupCombatWeapons, Name: "TYPES.Item.weapon", Type: GroupTypeSystem},
	{ID: GroupCombatPowers, Name: "TITLE.PSYCHIC_POWERS", Type: GroupTypeSystem},
	{ID: GroupCombatAbilities, Name: "TITLE.ABILITIES", Type: GroupTypeSystem},
	{ID: GroupCombatTests, Name: "tokenActionHud.wng.tests", Type: GroupTypeSystem},

	{ID: GroupAttributes, Name: "TITLE.ATTRIBUTES", Type: GroupTypeSystem},
	{ID: GroupSkills, Name: "TITLE.SKILLS", Type: GroupTypeSystem},

	{ID: GroupTalents, Name: "TITLE.TALENTS", Type: GroupTypeSystem},
	{ID: GroupAbilities, Name: "TITLE.ABILITIES", Type: GroupTypeSystem},
	{ID: GroupPowers, Name: "TITLE.PSYCHIC_POWERS", Type: GroupTypeSystem},

	{ID: GroupArmour, Name: "TYPES.Item.armour", Type: GroupTypeSystem},
	{ID: GroupGear, Name: "TYPES.Item.gear", Type: GroupTypeSystem},
	{ID: GroupAmmo, Name: "TYPES.Item.ammo", Type: GroupTypeSystem},
	{ID: GroupWeapons, Name: "TYPES.Item.weapon", Type: GroupTypeSystem},
	{ID: GroupWeaponUpgrade, Name: "TYPES.Item.weaponUpgrade", Type: GroupTypeSystem},
	{ID: GroupAugmetic, Name: "TYPES.Item.augmetic", Type: GroupTypeSystem},

	{ID: GroupConditions, Name: "tokenActionHud.wng.conditions", Type: GroupTypeSystem},

	{ID: GroupCombat, Name: "tokenActionHud.combat", Type: GroupTypeSystem},
	{ID: GroupToken, Name: "tokenActionHud.token", Type: GroupTypeSystem},
	{ID: GroupRests, Name: "tokenActionHud.rests", Type: GroupTypeSystem},
	{ID: GroupUtility, Name: "tokenActionHud.utility", Type: GroupTypeSystem},
}

// LookupGroup finds a declared group
func LookupGroup(id GroupID) (Group, bool) {
	for _, g := range Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}
