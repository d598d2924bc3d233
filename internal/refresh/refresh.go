// Package refresh turns force-update requests into events on the
// rpg-toolkit bus so every attached view re-renders.
package refresh

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
)

// EventForceUpdate is published once per force-update request
const EventForceUpdate = "hud.force_update"

// hudSource identifies the HUD as the event source
type hudSource struct{}

func (hudSource) GetID() string   { return hud.ModuleID }
func (hudSource) GetType() string { return "hud" }

var _ core.Entity = hudSource{}

// BusRefresher implements host.Refresher on an event bus
type BusRefresher struct {
	bus events.EventBus
}

var _ host.Refresher = (*BusRefresher)(nil)

// NewBusRefresher creates a refresher publishing on bus
func NewBusRefresher(bus events.EventBus) (*BusRefresher, error) {
	if bus == nil {
		return nil, errors.InvalidArgument("event bus is required")
	}
	return &BusRefresher{bus: bus}, nil
}

// ForceUpdate asks every listener to rebuild the HUD
func (r *BusRefresher) ForceUpdate(ctx context.Context) error {
	slog.Debug("publishing hud force update")

	if err := r.bus.Publish(ctx, events.NewGameEvent(EventForceUpdate, hudSource{}, nil)); err != nil {
		return errors.Wrap(err, "failed to publish force update")
	}
	return nil
}

// OnForceUpdate registers fn for force-update events and returns the
// subscription id
func (r *BusRefresher) OnForceUpdate(fn func(ctx context.Context) error) string {
	return r.bus.SubscribeFunc(EventForceUpdate, 0, func(ctx context.Context, _ events.Event) error {
		return fn(ctx)
	})
}

// Stop removes a subscription made with OnForceUpdate
func (r *BusRefresher) Stop(subscriptionID string) error {
	return r.bus.Unsubscribe(subscriptionID)
}

// Counter is a Refresher that only counts calls. It backs headless
// sessions where nothing is drawn.
type Counter struct {
	count int
}

var _ host.Refresher = (*Counter)(nil)

// ForceUpdate increments the count
func (c *Counter) ForceUpdate(_ context.Context) error {
	c.count++
	return nil
}

// Count returns the number of force updates seen
func (c *Counter) Count() int {
	return c.count
}
