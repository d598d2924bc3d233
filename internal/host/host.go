// Package host defines what the HUD needs from the application it runs in:
// localization, image lookup, a way to force a HUD re-render and an
// optional item-sheet renderer. Click and selection state are plain values
// passed in per call.
package host

//go:generate mockgen -destination=mock/mock_host.go -package=hostmock github.com/KirkDiggler/token-action-hud-wng/internal/host Refresher,ItemRenderer

import (
	"context"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
)

// Localizer resolves an i18n key; unknown keys come back unchanged
type Localizer interface {
	Localize(key string) string
}

// ImageResolver maps an image reference to what the HUD should show
type ImageResolver interface {
	Image(ref string) string
}

// Refresher asks the host to rebuild and re-render the HUD
type Refresher interface {
	ForceUpdate(ctx context.Context) error
}

// ItemRenderer opens an item's sheet
type ItemRenderer interface {
	RenderItem(ctx context.Context, actor *wng.Actor, itemID string) error
}

// MouseButton identifies which button produced a click
type MouseButton int

// Mouse buttons
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// ClickEvent is the host's click
type ClickEvent struct {
	Button MouseButton `json:"button"`
	Alt    bool        `json:"alt,omitempty"`
	Ctrl   bool        `json:"ctrl,omitempty"`
	Shift  bool        `json:"shift,omitempty"`
}

// IsRightClick reports a right-button click
func (e ClickEvent) IsRightClick() bool {
	return e.Button == MouseButtonRight
}

// HasModifier reports whether any modifier key was held
func (e ClickEvent) HasModifier() bool {
	return e.Alt || e.Ctrl || e.Shift
}

// Token is a placed actor on the scene
type Token struct {
	ID    string
	Actor *wng.Actor
}
