// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	enginemock "github.com/KirkDiggler/token-action-hud-wng/internal/engine/mock"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	hostmock "github.com/KirkDiggler/token-action-hud-wng/internal/host/mock"
)

// ExpectForceUpdates expects exactly n refresh signals
func ExpectForceUpdates(refresher *hostmock.MockRefresher, n int) {
	refresher.EXPECT().
		ForceUpdate(gomock.Any()).
		Return(nil).
		Times(n)
}

// ExpectConditionToggle expects one condition click: the presence check,
// then the add or remove it leads to
func ExpectConditionToggle(game *enginemock.MockGameSystem, actor *wng.Actor, conditionID string, present bool) *gomock.Call {
	check := game.EXPECT().
		HasCondition(actor, conditionID).
		Return(present)

	if present {
		return game.EXPECT().
			RemoveCondition(gomock.Any(), actor, conditionID).
			Return(nil).
			After(check)
	}
	return game.EXPECT().
		AddCondition(gomock.Any(), actor, conditionID).
		Return(nil).
		After(check)
}
