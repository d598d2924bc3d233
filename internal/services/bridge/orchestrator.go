package bridge

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
	"github.com/KirkDiggler/token-action-hud-wng/internal/orchestrators/actions"
	"github.com/KirkDiggler/token-action-hud-wng/internal/orchestrators/roll"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/actor"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/chatlog"
)

var tracer = otel.Tracer("github.com/KirkDiggler/token-action-hud-wng/internal/services/bridge")

// Config holds the bridge dependencies
type Config struct {
	Actors    actor.Repository
	Chat      chatlog.Repository
	Combat    CombatLoader
	Builder   actions.ActionSource
	Router    roll.ClickRouter
	Localizer host.Localizer

	// StatusEffects defaults to wng.DefaultStatusEffects
	StatusEffects []wng.StatusEffect
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Actors == nil {
		vb.RequiredField("Actors")
	}
	if c.Chat == nil {
		vb.RequiredField("Chat")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}
	if c.Builder == nil {
		vb.RequiredField("Builder")
	}
	if c.Router == nil {
		vb.RequiredField("Router")
	}
	if c.Localizer == nil {
		vb.RequiredField("Localizer")
	}

	return vb.Build()
}

type service struct {
	actors        actor.Repository
	chat          chatlog.Repository
	combat        CombatLoader
	builder       actions.ActionSource
	router        roll.ClickRouter
	loc           host.Localizer
	statusEffects []wng.StatusEffect
}

// New creates a new bridge service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	effects := cfg.StatusEffects
	if effects == nil {
		effects = wng.DefaultStatusEffects()
	}

	return &service{
		actors:        cfg.Actors,
		chat:          cfg.Chat,
		combat:        cfg.Combat,
		builder:       cfg.Builder,
		router:        cfg.Router,
		loc:           cfg.Localizer,
		statusEffects: effects,
	}, nil
}

func (s *service) BuildActions(ctx context.Context, input *BuildActionsInput) (*BuildActionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := tracer.Start(ctx, "bridge.BuildActions",
		trace.WithAttributes(attribute.Int("selection.size", len(input.ActorIDs))),
	)
	defer span.End()

	selected, err := s.loadActors(ctx, input.ActorIDs)
	if err != nil {
		return nil, err
	}

	combat, err := s.combat.ActiveCombat(ctx)
	if err != nil {
		return nil, err
	}

	buildInput := &actions.BuildInput{
		Combat:        combat,
		StatusEffects: s.statusEffects,
	}
	if len(selected) == 1 {
		buildInput.Actor = selected[0]
	}

	out, err := s.builder.BuildSystemActions(ctx, buildInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build actions")
	}

	return &BuildActionsOutput{Groups: out.Groups}, nil
}

func (s *service) HandleClick(ctx context.Context, input *HandleClickInput) (*HandleClickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncodedValue == "" {
		return nil, errors.InvalidArgument("encoded value is required")
	}

	ctx, span := tracer.Start(ctx, "bridge.HandleClick",
		trace.WithAttributes(
			attribute.String("hud.encoded_value", input.EncodedValue),
			attribute.Int("selection.size", len(input.ActorIDs)),
		),
	)
	defer span.End()

	selected, err := s.loadActors(ctx, input.ActorIDs)
	if err != nil {
		return nil, err
	}

	combat, err := s.combat.ActiveCombat(ctx)
	if err != nil {
		return nil, err
	}

	clickInput := &roll.ClickInput{
		Event:        input.Event,
		EncodedValue: input.EncodedValue,
		Combat:       combat,
	}
	for _, a := range selected {
		clickInput.Controlled = append(clickInput.Controlled, &host.Token{ID: "token-" + a.ID, Actor: a})
	}
	if len(selected) == 1 {
		clickInput.Actor = selected[0]
		clickInput.Token = clickInput.Controlled[0]
	}

	slog.Debug("routing click",
		"encoded_value", input.EncodedValue,
		"selected", len(selected),
		"right_click", input.Event.IsRightClick(),
	)

	if err := s.router.HandleActionClick(ctx, clickInput); err != nil {
		return nil, err
	}

	return &HandleClickOutput{}, nil
}

func (s *service) GetLayout(_ context.Context, _ *GetLayoutInput) (*GetLayoutOutput, error) {
	return &GetLayoutOutput{Defaults: hud.DefaultLayout(s.loc)}, nil
}

func (s *service) ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error) {
	listInput := actor.ListInput{}
	if input != nil {
		listInput.Type = input.Type
	}

	out, err := s.actors.List(ctx, listInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list actors")
	}
	return &ListActorsOutput{Actors: out.Actors}, nil
}

func (s *service) ListChat(ctx context.Context, input *ListChatInput) (*ListChatOutput, error) {
	listInput := chatlog.ListInput{}
	if input != nil {
		listInput.ActorID = input.ActorID
		listInput.Limit = input.Limit
	}

	out, err := s.chat.List(ctx, listInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat")
	}
	return &ListChatOutput{Messages: out.Messages}, nil
}

// loadActors resolves every id, failing on the first missing actor.
// Repeated ids collapse to one actor in first-seen order.
func (s *service) loadActors(ctx context.Context, ids []string) ([]*wng.Actor, error) {
	out := make([]*wng.Actor, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		got, err := s.actors.Get(ctx, actor.GetInput{ID: id})
		if err != nil {
			trace.SpanFromContext(ctx).RecordError(err, trace.WithAttributes(attribute.String("actor.id", id)))
			return nil, errors.Wrapf(err, "failed to load actor %s", id)
		}
		out = append(out, got.Actor)
	}
	return out, nil
}
