package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/token-action-hud-wng/internal/config"
	"github.com/KirkDiggler/token-action-hud-wng/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/fixtures"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	"github.com/KirkDiggler/token-action-hud-wng/internal/i18n"
	"github.com/KirkDiggler/token-action-hud-wng/internal/orchestrators/actions"
	"github.com/KirkDiggler/token-action-hud-wng/internal/orchestrators/roll"
	"github.com/KirkDiggler/token-action-hud-wng/internal/pkg/clock"
	"github.com/KirkDiggler/token-action-hud-wng/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/token-action-hud-wng/internal/redis"
	"github.com/KirkDiggler/token-action-hud-wng/internal/refresh"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/actor"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/chatlog"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/encounter"
	"github.com/KirkDiggler/token-action-hud-wng/internal/services/bridge"
)

// app holds everything a command needs, wired from config
type app struct {
	actors     actor.Repository
	encounters encounter.Repository
	chat       *chatlog.Store
	refresher  *refresh.BusRefresher
	bridge     bridge.Service

	closers []func() error
}

type stores struct {
	actors     actor.Repository
	encounters encounter.Repository
	closers    []func() error
}

// openStores picks the actor and encounter stores for the configured backend
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.StoreBackend != config.StoreRedis {
		return &stores{
			actors:     actor.NewInMemory(),
			encounters: encounter.NewInMemory(),
		}, nil
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}
	if err := redisclient.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	actors, err := actor.NewRedis(&actor.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	encounters, err := encounter.NewRedis(&encounter.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	slog.Info("using redis stores", "addr", cfg.RedisAddr)

	return &stores{
		actors:     actors,
		encounters: encounters,
		closers:    []func() error{client.Close},
	}, nil
}

// newApp wires the bridge and its dependencies. Memory stores are seeded
// with the sample party so a fresh process has something to show.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	st, err := openStores(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open stores")
	}
	a := &app{
		actors:     st.actors,
		encounters: st.encounters,
		closers:    st.closers,
	}

	if cfg.StoreBackend == config.StoreMemory {
		if _, err := fixtures.Seed(ctx, &fixtures.SeedInput{
			Actors:     a.actors,
			Encounters: a.encounters,
		}); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.chat, err = chatlog.Open(&chatlog.Config{
		Path:  cfg.ChatDBPath,
		Clock: clock.New(),
		IDGen: idgen.NewUUID("msg"),
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to open chat log")
	}
	a.closers = append(a.closers, a.chat.Close)

	if err := a.wireBridge(cfg); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *app) wireBridge(cfg *config.Config) error {
	bus := events.NewBus()

	refresher, err := refresh.NewBusRefresher(bus)
	if err != nil {
		return err
	}
	a.refresher = refresher

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   bus,
		DiceRoller: dice.DefaultRoller,
		Actors:     a.actors,
		Chat:       a.chat,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create game system")
	}

	scripts, err := rpgtoolkit.NewScriptRunner(&rpgtoolkit.ScriptRunnerConfig{
		GameSystem: adapter,
		Chat:       a.chat,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create script runner")
	}

	loader, err := rpgtoolkit.NewTrackerLoader(&rpgtoolkit.TrackerLoaderConfig{
		Encounters: a.encounters,
		Actors:     a.actors,
		Scripts:    scripts,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create combat loader")
	}

	catalog, err := i18n.Load(cfg.Locale)
	if err != nil {
		return errors.Wrap(err, "failed to load translations")
	}

	builder, err := actions.NewOrchestrator(&actions.Config{
		Localizer:         catalog,
		Images:            host.DefaultImages{},
		DisplayUnequipped: cfg.DisplayUnequipped,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create action builder")
	}

	router, err := roll.NewOrchestrator(&roll.Config{
		GameSystem:             adapter,
		Refresher:              refresher,
		ItemRenderer:           adapter,
		RenderItemOnRightClick: cfg.RenderItemOnRightClick,
		FanOutActorTypes:       cfg.ActorTypes(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create click router")
	}

	a.bridge, err = bridge.New(&bridge.Config{
		Actors:    a.actors,
		Chat:      a.chat,
		Combat:    loader,
		Builder:   builder,
		Router:    router,
		Localizer: catalog,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create bridge")
	}

	slog.Info("hud wired",
		"locale", catalog.Tag().String(),
		"store", cfg.StoreBackend,
		"chat_db", cfg.ChatDBPath,
	)
	return nil
}

// Close releases stores in reverse order of opening
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("failed to close resource", "error", err)
		}
	}
	a.closers = nil
}
