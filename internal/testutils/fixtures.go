package testutils

import (
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/testutils/builders"
)

// Sample IDs used across tests
const (
	TestAgentID   = "agent-test-001"
	TestThreatID  = "threat-test-001"
	TestVehicleID = "vehicle-test-001"

	TestBolterID     = "item-bolter"
	TestChainswordID = "item-chainsword"
	TestLasgunID     = "item-lasgun"
	TestSmiteID      = "item-smite"
	TestRageID       = "item-rage"
	TestArmourID     = "item-flak"
	TestAuspexID     = "item-auspex"
	TestTalentID     = "item-talent-deadshot"
)

// CreateTestAgent returns an agent carrying two equipped weapons, one
// unequipped weapon, a power, an ability, armour, gear and a talent
func CreateTestAgent() *wng.Actor {
	return builders.NewActorBuilder().
		WithID(TestAgentID).
		WithName("Sister Amalthea").
		WithType(wng.ActorTypeAgent).
		WithItem(builders.Weapon(TestBolterID, "Bolter", true)).
		WithItem(builders.Weapon(TestChainswordID, "Chainsword", true)).
		WithItem(builders.Weapon(TestLasgunID, "Lasgun", false)).
		WithItem(&wng.Item{ID: TestSmiteID, Name: "Smite", Type: wng.ItemTypePsychicPower, Skill: "psychicMastery"}).
		WithItem(&wng.Item{ID: TestRageID, Name: "Righteous Rage", Type: wng.ItemTypeAbility, Dice: 2}).
		WithItem(&wng.Item{ID: TestArmourID, Name: "Flak Armour", Type: wng.ItemTypeArmour, Equippable: true, Equipped: true}).
		WithItem(&wng.Item{ID: TestAuspexID, Name: "Auspex", Type: wng.ItemTypeGear}).
		WithItem(&wng.Item{ID: TestTalentID, Name: "Deadshot", Type: wng.ItemTypeTalent}).
		WithStandardStats().
		Build()
}

// CreateTestThreat returns a threat with a single weapon and stats
func CreateTestThreat() *wng.Actor {
	return builders.NewActorBuilder().
		WithID(TestThreatID).
		WithName("Ork Boy").
		WithType(wng.ActorTypeThreat).
		WithItem(builders.Weapon("item-choppa", "Choppa", true)).
		WithStandardStats().
		Build()
}

// CreateTestVehicle returns a vehicle, which gets no HUD actions
func CreateTestVehicle() *wng.Actor {
	return builders.NewActorBuilder().
		WithID(TestVehicleID).
		WithName("Rhino").
		WithType(wng.ActorTypeVehicle).
		Build()
}
