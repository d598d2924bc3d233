package hud_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
)

type upperLocalizer struct{}

func (upperLocalizer) Localize(key string) string { return "L(" + key + ")" }

func TestEncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		actionType hud.ActionType
		id         string
	}{
		{hud.ActionTypeCombat, "determination"},
		{hud.ActionTypeCombat, "Xk29dLq0aZ"},
		{hud.ActionTypeAttribute, "strength"},
		{hud.ActionTypeSkill, "ballisticSkill"},
		{hud.ActionTypeTalent, "talent-1"},
		{hud.ActionTypeGear, "gear.with.dots"},
		{hud.ActionTypeCondition, "onfire"},
		{hud.ActionTypeUtility, hud.UtilityEndTurn},
		{hud.ActionTypeItem, "item 1"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.actionType)+"/"+tc.id, func(t *testing.T) {
			encoded, err := hud.Encode(tc.actionType, tc.id)
			require.NoError(t, err)
			assert.Equal(t, string(tc.actionType)+"|"+tc.id, encoded)

			gotType, gotID, err := hud.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.actionType, gotType)
			assert.Equal(t, tc.id, gotID)
		})
	}
}

func TestEncodeRejects(t *testing.T) {
	_, err := hud.Encode(hud.ActionTypeGear, "a|b")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = hud.Encode(hud.ActionTypeGear, "")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = hud.Encode("spell", "fireball")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDecodeRejects(t *testing.T) {
	for _, value := range []string{"", "combat", "combat|", "spell|fireball", "gear|a|b", "|x"} {
		t.Run(value, func(t *testing.T) {
			_, _, err := hud.Decode(value)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestActionTypeLabels(t *testing.T) {
	label, ok := hud.ActionTypeCombat.Label()
	assert.True(t, ok)
	assert.Equal(t, "tokenActionHud.wng.combat", label)

	_, ok = hud.ActionTypeAttribute.Label()
	assert.False(t, ok)
	_, ok = hud.ActionTypeSkill.Label()
	assert.False(t, ok)
}

func TestListName(t *testing.T) {
	assert.Equal(t, "Gear: Auspex", hud.ListName("Gear", "Auspex"))
	assert.Equal(t, "Strength (3)", hud.ListName("", "Strength (3)"))
}

func TestToggleClass(t *testing.T) {
	assert.Equal(t, "toggle", hud.ToggleClass(false))
	assert.Equal(t, "toggle active", hud.ToggleClass(true))
}

func TestInventoryActionType(t *testing.T) {
	assert.Equal(t, hud.ActionTypeTalent, hud.InventoryActionType(wng.ItemTypeTalent))
	assert.Equal(t, hud.ActionTypeTalent, hud.InventoryActionType(wng.ItemTypeAbility))
	assert.Equal(t, hud.ActionTypeTalent, hud.InventoryActionType(wng.ItemTypePsychicPower))
	assert.Equal(t, hud.ActionTypeGear, hud.InventoryActionType(wng.ItemTypeWeapon))
	assert.Equal(t, hud.ActionTypeGear, hud.InventoryActionType(wng.ItemTypeAugmetic))
}

func TestItemTypeGroupsCoverEveryItemType(t *testing.T) {
	for _, itemType := range []wng.ItemType{
		wng.ItemTypeWeapon, wng.ItemTypeArmour, wng.ItemTypeGear, wng.ItemTypeAmmo,
		wng.ItemTypeTalent, wng.ItemTypeAbility, wng.ItemTypePsychicPower,
		wng.ItemTypeWeaponUpgrade, wng.ItemTypeAugmetic,
	} {
		groupID, ok := hud.ItemTypeGroups[itemType]
		require.True(t, ok, itemType)
		_, declared := hud.LookupGroup(groupID)
		assert.True(t, declared, groupID)
	}
}

func TestDefaultLayout(t *testing.T) {
	defaults := hud.DefaultLayout(upperLocalizer{})

	require.Len(t, defaults.Layout, 6)
	assert.Len(t, defaults.Groups, len(hud.Groups))

	stats := defaults.Layout[0]
	assert.Equal(t, "stats", stats.ID)
	assert.Equal(t, "L(tokenActionHud.wng.stats)", stats.Name)
	require.Len(t, stats.Groups, 2)
	assert.Equal(t, "stats_attributes", stats.Groups[0].NestID)
	assert.Equal(t, "L(TITLE.ATTRIBUTES)", stats.Groups[0].Name)
	assert.Equal(t, "Group: L(TITLE.ATTRIBUTES)", stats.Groups[0].ListName)

	gear := defaults.Layout[3]
	assert.Equal(t, "gear_augmetic", gear.Groups[5].NestID)

	utility := defaults.Layout[5]
	assert.Equal(t, "utility_combat", utility.Groups[0].NestID)

	// the shared table is not mutated by localization
	assert.Equal(t, "TITLE.ATTRIBUTES", hud.Groups[4].Name)
}

func TestGroupOrderCoversLayout(t *testing.T) {
	order := hud.GroupOrder()
	assert.Equal(t, hud.GroupAttributes, order[0])
	assert.Len(t, order, 20)
}
