package bridge_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/token-action-hud-wng/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/fixtures"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
	"github.com/KirkDiggler/token-action-hud-wng/internal/i18n"
	"github.com/KirkDiggler/token-action-hud-wng/internal/orchestrators/actions"
	"github.com/KirkDiggler/token-action-hud-wng/internal/orchestrators/roll"
	"github.com/KirkDiggler/token-action-hud-wng/internal/pkg/clock"
	"github.com/KirkDiggler/token-action-hud-wng/internal/pkg/idgen"
	"github.com/KirkDiggler/token-action-hud-wng/internal/refresh"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/actor"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/chatlog"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/encounter"
	"github.com/KirkDiggler/token-action-hud-wng/internal/services/bridge"
)

type fourRoller struct{}

func (fourRoller) Roll(_ int) (int, error) { return 4, nil }
func (fourRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = 4
	}
	return out, nil
}

// SandboxTestSuite wires the real builder, router and sandbox game system
type SandboxTestSuite struct {
	suite.Suite
	ctx        context.Context
	actors     *actor.InMemoryRepository
	encounters *encounter.InMemoryRepository
	chat       *chatlog.Store
	refresher  *refresh.Counter
	service    bridge.Service
}

func (s *SandboxTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.actors = actor.NewInMemory()
	s.encounters = encounter.NewInMemory()
	s.refresher = &refresh.Counter{}

	_, err := fixtures.Seed(s.ctx, &fixtures.SeedInput{Actors: s.actors, Encounters: s.encounters})
	s.Require().NoError(err)

	s.chat, err = chatlog.Open(&chatlog.Config{Path: ":memory:", Clock: clock.New(), IDGen: idgen.NewUUID("msg")})
	s.Require().NoError(err)

	game, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: fourRoller{},
		Actors:     s.actors,
		Chat:       s.chat,
	})
	s.Require().NoError(err)

	scripts, err := rpgtoolkit.NewScriptRunner(&rpgtoolkit.ScriptRunnerConfig{GameSystem: game, Chat: s.chat})
	s.Require().NoError(err)

	loader, err := rpgtoolkit.NewTrackerLoader(&rpgtoolkit.TrackerLoaderConfig{
		Encounters: s.encounters,
		Actors:     s.actors,
		Scripts:    scripts,
	})
	s.Require().NoError(err)

	catalog, err := i18n.Load("en")
	s.Require().NoError(err)

	builder, err := actions.NewOrchestrator(&actions.Config{Localizer: catalog, Images: host.DefaultImages{}})
	s.Require().NoError(err)

	router, err := roll.NewOrchestrator(&roll.Config{GameSystem: game, Refresher: s.refresher})
	s.Require().NoError(err)

	s.service, err = bridge.New(&bridge.Config{
		Actors:    s.actors,
		Chat:      s.chat,
		Combat:    loader,
		Builder:   builder,
		Router:    router,
		Localizer: catalog,
	})
	s.Require().NoError(err)
}

func (s *SandboxTestSuite) TearDownTest() {
	s.NoError(s.chat.Close())
}

func TestSandboxTestSuite(t *testing.T) {
	suite.Run(t, new(SandboxTestSuite))
}

func (s *SandboxTestSuite) click(actorIDs []string, value string) error {
	_, err := s.service.HandleClick(s.ctx, &bridge.HandleClickInput{ActorIDs: actorIDs, EncodedValue: value})
	return err
}

func (s *SandboxTestSuite) TestBuildForSeededAgent() {
	out, err := s.service.BuildActions(s.ctx, &bridge.BuildActionsInput{ActorIDs: []string{"sister-amalthea"}})
	s.Require().NoError(err)

	var utility []hud.Action
	for _, g := range out.Groups {
		if g.Group.ID == hud.GroupCombat {
			utility = g.Actions
		}
	}
	s.Require().Len(utility, 1)
	s.Equal("utility|endTurn", utility[0].EncodedValue, "the seeded encounter starts on her turn")
}

func (s *SandboxTestSuite) TestConditionClickPersistsAndRefreshes() {
	s.Require().NoError(s.click([]string{"sister-amalthea"}, "condition|prone"))

	got, err := s.actors.Get(s.ctx, actor.GetInput{ID: "sister-amalthea"})
	s.Require().NoError(err)
	s.True(got.Actor.HasStatus("prone"))
	s.Equal(1, s.refresher.Count())

	s.Require().NoError(s.click([]string{"sister-amalthea"}, "condition|prone"))
	got, err = s.actors.Get(s.ctx, actor.GetInput{ID: "sister-amalthea"})
	s.Require().NoError(err)
	s.False(got.Actor.HasStatus("prone"))
	s.Equal(2, s.refresher.Count())
}

func (s *SandboxTestSuite) TestFanOutRollsForAgentsOnly() {
	s.Require().NoError(s.click([]string{"sister-amalthea", "ork-boy", "brother-tacitus"}, "combat|fear"))

	msgs, err := s.chat.List(s.ctx, chatlog.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(msgs.Messages, 2)
	s.Equal("brother-tacitus", msgs.Messages[0].ActorID)
	s.Equal("sister-amalthea", msgs.Messages[1].ActorID)
}

func (s *SandboxTestSuite) TestSkillClickReadsBackFromChat() {
	s.Require().NoError(s.click([]string{"sister-amalthea"}, "skill|ballisticSkill"))

	out, err := s.service.ListChat(s.ctx, &bridge.ListChatInput{ActorID: "sister-amalthea"})
	s.Require().NoError(err)
	s.Require().Len(out.Messages, 1)

	msg := out.Messages[0]
	s.Equal(wng.ChatKindRoll, msg.Kind)
	s.Require().NotNil(msg.Roll)
	s.Equal("ballisticSkill", msg.Roll.Test)
	s.Equal(7, msg.Roll.Pool)
	s.Equal(7, msg.Roll.Icons)
	s.Equal(4, msg.Roll.Wrath)
}

func (s *SandboxTestSuite) TestEndTurnRunsScriptsAndCompletes() {
	_, err := s.service.HandleClick(s.ctx, &bridge.HandleClickInput{
		ActorIDs:     []string{"sister-amalthea"},
		EncodedValue: "condition|onfire",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.click([]string{"sister-amalthea"}, "utility|endTurn"))

	got, err := s.actors.Get(s.ctx, actor.GetInput{ID: "sister-amalthea"})
	s.Require().NoError(err)
	s.True(got.Actor.HasStatus("bleeding"))

	active, err := s.encounters.GetActive(s.ctx, encounter.GetActiveInput{})
	s.Require().NoError(err)
	s.Empty(active.Encounter.CurrentID)
	s.True(active.Encounter.CombatantByActor("sister-amalthea").Complete)
	s.Equal(2, s.refresher.Count())
}
