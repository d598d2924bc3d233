package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/token-action-hud-wng/internal/config"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
	"github.com/KirkDiggler/token-action-hud-wng/internal/services/bridge"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		GRPCPort:               50052,
		StoreBackend:           config.StoreMemory,
		ChatDBPath:             filepath.Join(t.TempDir(), "chat.db"),
		Locale:                 "en",
		LogLevel:               "info",
		RenderItemOnRightClick: true,
		FanOutActorTypes:       []string{"agent"},
	}
}

func TestNewAppSeedsMemoryStores(t *testing.T) {
	ctx := context.Background()

	a, err := newApp(ctx, testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	actors, err := a.bridge.ListActors(ctx, &bridge.ListActorsInput{})
	require.NoError(t, err)
	assert.Len(t, actors.Actors, 4)

	out, err := a.bridge.BuildActions(ctx, &bridge.BuildActionsInput{ActorIDs: []string{"sister-amalthea"}})
	require.NoError(t, err)

	found := map[hud.GroupID]bool{}
	for _, g := range out.Groups {
		found[g.Group.ID] = true
	}
	assert.True(t, found[hud.GroupCombatWeapons])
	assert.True(t, found[hud.GroupConditions])
}

func TestNewAppClickRefreshes(t *testing.T) {
	ctx := context.Background()

	a, err := newApp(ctx, testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	refreshed := 0
	id := a.refresher.OnForceUpdate(func(context.Context) error {
		refreshed++
		return nil
	})
	defer func() { _ = a.refresher.Stop(id) }()

	_, err = a.bridge.HandleClick(ctx, &bridge.HandleClickInput{
		ActorIDs:     []string{"sister-amalthea"},
		EncodedValue: "condition|prone",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed)
}

func TestNewAppRollsReachChat(t *testing.T) {
	ctx := context.Background()

	a, err := newApp(ctx, testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	_, err = a.bridge.HandleClick(ctx, &bridge.HandleClickInput{
		ActorIDs:     []string{"sister-amalthea"},
		EncodedValue: "skill|awareness",
	})
	require.NoError(t, err)

	out, err := a.bridge.ListChat(ctx, &bridge.ListChatInput{Limit: 1})
	require.NoError(t, err)
	require.Len(t, out.Messages, 1)
	assert.Equal(t, "sister-amalthea", out.Messages[0].ActorID)
	require.NotNil(t, out.Messages[0].Roll)
	assert.Equal(t, 5, out.Messages[0].Roll.Pool)
}

func TestNewAppFallsBackToEnglish(t *testing.T) {
	cfg := testConfig(t)
	cfg.Locale = "xx"

	a, err := newApp(context.Background(), cfg)
	require.NoError(t, err, "unknown locales fall back to English")
	a.Close()
}
