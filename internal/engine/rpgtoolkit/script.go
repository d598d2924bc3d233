package rpgtoolkit

import (
	"context"
	"log/slog"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/KirkDiggler/token-action-hud-wng/internal/engine"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/chatlog"
)

// DefaultScriptTimeout bounds one script run
const DefaultScriptTimeout = 2 * time.Second

// ScriptRunner executes actor scripts in a sandboxed Lua VM
type ScriptRunner struct {
	game    engine.GameSystem
	chat    chatlog.Repository
	timeout time.Duration
}

// ScriptRunnerConfig contains configuration for creating a ScriptRunner
type ScriptRunnerConfig struct {
	GameSystem engine.GameSystem
	Chat       chatlog.Repository
	// Timeout defaults to DefaultScriptTimeout
	Timeout time.Duration
}

// Validate checks that all required dependencies are provided
func (c *ScriptRunnerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameSystem == nil {
		vb.RequiredField("GameSystem")
	}
	if c.Chat == nil {
		vb.RequiredField("Chat")
	}
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}

	return vb.Build()
}

// NewScriptRunner creates a new script runner
func NewScriptRunner(cfg *ScriptRunnerConfig) (*ScriptRunner, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultScriptTimeout
	}

	return &ScriptRunner{
		game:    cfg.GameSystem,
		chat:    cfg.Chat,
		timeout: timeout,
	}, nil
}

// Run executes every script bound to trigger, stopping at the first failure
func (r *ScriptRunner) Run(ctx context.Context, actor *wng.Actor, trigger string) error {
	if actor == nil {
		return errors.InvalidArgument("actor is required")
	}

	for i, script := range actor.ScriptsFor(trigger) {
		slog.Debug("running script",
			"actor_id", actor.ID,
			"trigger", trigger,
			"label", script.Label,
		)

		if err := r.exec(ctx, actor, script); err != nil {
			return errors.Wrapf(err, "script %d (%s) for %s failed", i, script.Label, actor.ID)
		}
	}
	return nil
}

func (r *ScriptRunner) exec(ctx context.Context, actor *wng.Actor, script *wng.Script) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	L.SetContext(ctx)

	openSafeLibs(L)
	sandbox(L)
	r.registerAPI(ctx, L, actor)

	if err := L.DoString(script.Code); err != nil {
		return errors.WrapWithCode(err, errors.CodeFailedPrecondition, "lua error")
	}
	return nil
}

func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

func sandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// registerAPI exposes the actor to the script
func (r *ScriptRunner) registerAPI(ctx context.Context, L *lua.LState, actor *wng.Actor) {
	L.SetGlobal("actor_name", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(actor.Name))
		return 1
	}))

	L.SetGlobal("has_condition", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(lua.LBool(r.game.HasCondition(actor, id)))
		return 1
	}))

	L.SetGlobal("add_condition", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		if err := r.game.AddCondition(ctx, actor, id); err != nil {
			L.RaiseError("add_condition(%s): %v", id, err)
		}
		return 0
	}))

	L.SetGlobal("remove_condition", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		if err := r.game.RemoveCondition(ctx, actor, id); err != nil {
			L.RaiseError("remove_condition(%s): %v", id, err)
		}
		return 0
	}))

	L.SetGlobal("chat", L.NewFunction(func(L *lua.LState) int {
		text := L.CheckString(1)
		_, err := r.chat.Append(ctx, chatlog.AppendInput{Message: &wng.ChatMessage{
			ActorID: actor.ID,
			Speaker: actor.Name,
			Kind:    wng.ChatKindScript,
			Content: text,
		}})
		if err != nil {
			L.RaiseError("chat: %v", err)
		}
		return 0
	}))
}
