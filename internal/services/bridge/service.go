// Package bridge plays the VTT's part for the sandbox host: it resolves
// selections to stored actors, loads the active encounter and hands both to
// the action builder and click router.
package bridge

//go:generate mockgen -destination=mock/mock_service.go -package=bridgemock github.com/KirkDiggler/token-action-hud-wng/internal/services/bridge Service

import (
	"context"

	"github.com/KirkDiggler/token-action-hud-wng/internal/engine"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
)

// Service defines the bridge operations
type Service interface {
	BuildActions(ctx context.Context, input *BuildActionsInput) (*BuildActionsOutput, error)
	HandleClick(ctx context.Context, input *HandleClickInput) (*HandleClickOutput, error)
	GetLayout(ctx context.Context, input *GetLayoutInput) (*GetLayoutOutput, error)
	ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error)
	ListChat(ctx context.Context, input *ListChatInput) (*ListChatOutput, error)
}

// CombatLoader returns the active encounter's combat, nil when none
type CombatLoader interface {
	ActiveCombat(ctx context.Context) (engine.Combat, error)
}

// BuildActionsInput is a selection to build the HUD for
type BuildActionsInput struct {
	// ActorIDs are the controlled tokens' actors; exactly one is a single
	// selection
	ActorIDs []string
}

// BuildActionsOutput is the ordered action tree
type BuildActionsOutput struct {
	Groups []hud.GroupActions
}

// HandleClickInput is one click on an action
type HandleClickInput struct {
	ActorIDs     []string
	EncodedValue string
	Event        host.ClickEvent
}

// HandleClickOutput is empty; effects land in the stores
type HandleClickOutput struct{}

// GetLayoutInput requests the default layout
type GetLayoutInput struct{}

// GetLayoutOutput is the localized default layout
type GetLayoutOutput struct {
	Defaults *hud.Defaults
}

// ListActorsInput requests the selectable actors
type ListActorsInput struct {
	Type wng.ActorType
}

// ListActorsOutput lists actors ordered by ID
type ListActorsOutput struct {
	Actors []*wng.Actor
}

// ListChatInput requests the newest chat messages
type ListChatInput struct {
	// ActorID filters by speaker when set
	ActorID string
	// Limit is clamped to chatlog.MaxListLimit
	Limit int
}

// ListChatOutput lists messages newest first
type ListChatOutput struct {
	Messages []*wng.ChatMessage
}
