package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
	"github.com/KirkDiggler/token-action-hud-wng/internal/i18n"
)

func TestMatch(t *testing.T) {
	testCases := []struct {
		locale string
		want   language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"en-GB", language.English},
		{"de", language.German},
		{"de-AT", language.German},
		{"not a locale", language.English},
		{"ja", language.English},
	}

	for _, tc := range testCases {
		t.Run(tc.locale, func(t *testing.T) {
			assert.Equal(t, tc.want, i18n.Match(tc.locale))
		})
	}
}

func TestLocalizeEnglish(t *testing.T) {
	catalog, err := i18n.Load("en")
	require.NoError(t, err)

	assert.Equal(t, "Combat", catalog.Localize("tokenActionHud.wng.combat"))
	assert.Equal(t, "Psychic Powers", catalog.Localize("TITLE.PSYCHIC_POWERS"))
	assert.Equal(t, "On Fire", catalog.Localize("CONDITION.OnFire"))
	assert.Equal(t, "missing.key", catalog.Localize("missing.key"))
}

func TestLocalizeGermanFallsBackToEnglish(t *testing.T) {
	catalog, err := i18n.Load("de-DE")
	require.NoError(t, err)

	assert.Equal(t, language.German, catalog.Tag())
	assert.Equal(t, "Kampf", catalog.Localize("tokenActionHud.wng.combat"))
	// not translated in the German file
	assert.Equal(t, "Augmetic", catalog.Localize("TYPES.Item.augmetic"))
}

func TestEveryStaticKeyHasEnglishText(t *testing.T) {
	catalog, err := i18n.Load("en")
	require.NoError(t, err)

	var keys []string
	for _, g := range hud.Groups {
		keys = append(keys, g.Name)
	}
	for _, test := range hud.CombatTests {
		keys = append(keys, test.Name)
	}
	for _, effect := range wng.DefaultStatusEffects() {
		if effect.ID != "" {
			keys = append(keys, effect.Name)
		}
	}
	for _, actionType := range []hud.ActionType{
		hud.ActionTypeCombat, hud.ActionTypeTalent, hud.ActionTypeGear,
		hud.ActionTypeCondition, hud.ActionTypeUtility,
	} {
		label, ok := actionType.Label()
		require.True(t, ok)
		keys = append(keys, label)
	}
	keys = append(keys, "tokenActionHud.wng.activate", "tokenActionHud.wng.deactivate")

	for _, key := range keys {
		assert.NotEqual(t, key, catalog.Localize(key), "no English text for %s", key)
	}
}
