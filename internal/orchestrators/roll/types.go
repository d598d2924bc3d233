package roll

import (
	"github.com/KirkDiggler/token-action-hud-wng/internal/engine"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
)

// ClickInput is one action click
type ClickInput struct {
	Event        host.ClickEvent
	EncodedValue string

	// Actor and Token are the single selection, nil when several tokens
	// are controlled
	Actor *wng.Actor
	Token *host.Token
	// Controlled are the tokens the user controls on the scene
	Controlled []*host.Token
	// Combat is the active encounter, nil when there is none
	Combat engine.Combat
}

// HoverInput is the pointer entering or leaving an action
type HoverInput struct {
	EncodedValue string
	Hovering     bool
}

// GroupClickInput is a right click on a group header while the HUD is locked
type GroupClickInput struct {
	Event host.ClickEvent
	Group hud.GroupData
}
