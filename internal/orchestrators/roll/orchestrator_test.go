package roll_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/token-action-hud-wng/internal/engine"
	enginemock "github.com/KirkDiggler/token-action-hud-wng/internal/engine/mock"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	hostmock "github.com/KirkDiggler/token-action-hud-wng/internal/host/mock"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
	"github.com/KirkDiggler/token-action-hud-wng/internal/orchestrators/roll"
	"github.com/KirkDiggler/token-action-hud-wng/internal/testutils"
	"github.com/KirkDiggler/token-action-hud-wng/internal/testutils/builders"
	"github.com/KirkDiggler/token-action-hud-wng/internal/testutils/mocks"
)

var (
	leftClick  = host.ClickEvent{Button: host.MouseButtonLeft}
	rightClick = host.ClickEvent{Button: host.MouseButtonRight}
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockGame      *enginemock.MockGameSystem
	mockCombat    *enginemock.MockCombat
	mockRefresher *hostmock.MockRefresher
	mockRenderer  *hostmock.MockItemRenderer
	orchestrator  roll.ClickRouter
	ctx           context.Context
	actor         *wng.Actor
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGame = enginemock.NewMockGameSystem(s.ctrl)
	s.mockCombat = enginemock.NewMockCombat(s.ctrl)
	s.mockRefresher = hostmock.NewMockRefresher(s.ctrl)
	s.mockRenderer = hostmock.NewMockItemRenderer(s.ctrl)
	s.ctx = context.Background()
	s.actor = testutils.CreateTestAgent()

	s.orchestrator = s.newRouter(&roll.Config{
		GameSystem:             s.mockGame,
		Refresher:              s.mockRefresher,
		ItemRenderer:           s.mockRenderer,
		RenderItemOnRightClick: true,
	})
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) newRouter(cfg *roll.Config) roll.ClickRouter {
	router, err := roll.NewOrchestrator(cfg)
	s.Require().NoError(err)
	return router
}

func (s *OrchestratorTestSuite) click(event host.ClickEvent, actionType hud.ActionType, id string) error {
	encoded, err := hud.Encode(actionType, id)
	s.Require().NoError(err)

	return s.orchestrator.HandleActionClick(s.ctx, &roll.ClickInput{
		Event:        event,
		EncodedValue: encoded,
		Actor:        s.actor,
		Combat:       s.mockCombat,
	})
}

func (s *OrchestratorTestSuite) item(id string) *wng.Item {
	item, ok := s.actor.Item(id)
	s.Require().True(ok)
	return item
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := roll.NewOrchestrator(&roll.Config{})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "GameSystem")
	s.Contains(err.Error(), "Refresher")

	_, err = roll.NewOrchestrator(&roll.Config{
		GameSystem:       s.mockGame,
		Refresher:        s.mockRefresher,
		FanOutActorTypes: []wng.ActorType{"character"},
	})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "FanOutActorTypes")
}

func (s *OrchestratorTestSuite) TestMalformedValueIsRejected() {
	for _, value := range []string{"", "combat", "spell|fireball", "gear|a|b"} {
		err := s.orchestrator.HandleActionClick(s.ctx, &roll.ClickInput{
			Event:        leftClick,
			EncodedValue: value,
			Actor:        s.actor,
		})
		s.True(errors.IsInvalidArgument(err), value)
	}
}

func (s *OrchestratorTestSuite) TestCombatWeapon() {
	s.mockGame.EXPECT().SetupWeaponTest(gomock.Any(), s.actor, s.item(testutils.TestBolterID)).Return(nil)

	s.NoError(s.click(leftClick, hud.ActionTypeCombat, testutils.TestBolterID))
}

func (s *OrchestratorTestSuite) TestCombatPower() {
	s.mockGame.EXPECT().SetupPowerTest(gomock.Any(), s.actor, s.item(testutils.TestSmiteID)).Return(nil)

	s.NoError(s.click(leftClick, hud.ActionTypeCombat, testutils.TestSmiteID))
}

func (s *OrchestratorTestSuite) TestCombatAbility() {
	s.mockGame.EXPECT().SetupAbilityRoll(gomock.Any(), s.actor, s.item(testutils.TestRageID)).Return(nil)

	s.NoError(s.click(leftClick, hud.ActionTypeCombat, testutils.TestRageID))
}

func (s *OrchestratorTestSuite) TestCombatGenericTests() {
	for _, test := range hud.CombatTests {
		s.mockGame.EXPECT().SetupGenericTest(gomock.Any(), s.actor, test.ID).Return(nil)

		s.NoError(s.click(leftClick, hud.ActionTypeCombat, test.ID))
	}
}

func (s *OrchestratorTestSuite) TestCombatNonCombatItemFallsBackToGeneric() {
	// armour resolves to its item type, which is not a combat type
	s.mockGame.EXPECT().SetupGenericTest(gomock.Any(), s.actor, "armour").Return(nil)

	s.NoError(s.click(leftClick, hud.ActionTypeCombat, testutils.TestArmourID))
}

func (s *OrchestratorTestSuite) TestCombatTypeTagWithoutItemIsIgnored() {
	// the strict mock fails on any game system call
	for _, tag := range []wng.ItemType{wng.ItemTypeWeapon, wng.ItemTypePsychicPower, wng.ItemTypeAbility} {
		s.NoError(s.click(leftClick, hud.ActionTypeCombat, string(tag)), tag)
	}
}

func (s *OrchestratorTestSuite) TestCombatHostErrorPropagates() {
	s.mockGame.EXPECT().
		SetupWeaponTest(gomock.Any(), s.actor, gomock.Any()).
		Return(errors.FailedPrecondition("no ammo"))

	err := s.click(leftClick, hud.ActionTypeCombat, testutils.TestBolterID)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestAttributeAndSkill() {
	gomock.InOrder(
		s.mockGame.EXPECT().SetupAttributeTest(gomock.Any(), s.actor, "strength").Return(nil),
		s.mockGame.EXPECT().SetupSkillTest(gomock.Any(), s.actor, "ballisticSkill").Return(nil),
	)

	s.NoError(s.click(leftClick, hud.ActionTypeAttribute, "strength"))
	s.NoError(s.click(leftClick, hud.ActionTypeSkill, "ballisticSkill"))
}

func (s *OrchestratorTestSuite) TestItemLeftClickSendsToChat() {
	s.mockGame.EXPECT().SendToChat(gomock.Any(), s.actor, s.item(testutils.TestTalentID)).Return(nil)
	s.mockGame.EXPECT().SendToChat(gomock.Any(), s.actor, s.item(testutils.TestAuspexID)).Return(nil)

	s.NoError(s.click(leftClick, hud.ActionTypeTalent, testutils.TestTalentID))
	s.NoError(s.click(leftClick, hud.ActionTypeGear, testutils.TestAuspexID))
}

func (s *OrchestratorTestSuite) TestRightClickNonEquippableDoesNothing() {
	// no expectations: any call fails the test
	s.NoError(s.click(rightClick, hud.ActionTypeGear, testutils.TestAuspexID))
}

func (s *OrchestratorTestSuite) TestRightClickEquippableTogglesOnceAndRefreshesOnce() {
	armour := s.item(testutils.TestArmourID)
	s.Require().True(armour.Equipped)

	gomock.InOrder(
		s.mockGame.EXPECT().
			SetEquipped(gomock.Any(), s.actor, armour, false).
			DoAndReturn(func(_ context.Context, _ *wng.Actor, item *wng.Item, equipped bool) error {
				item.Equipped = equipped
				return nil
			}),
		s.mockRefresher.EXPECT().ForceUpdate(gomock.Any()).Return(nil),
	)

	s.NoError(s.click(rightClick, hud.ActionTypeGear, testutils.TestArmourID))
	s.False(armour.Equipped)
}

func (s *OrchestratorTestSuite) TestUnknownItemIsIgnored() {
	s.NoError(s.click(leftClick, hud.ActionTypeGear, "missing"))
	s.NoError(s.click(rightClick, hud.ActionTypeTalent, "missing"))
}

func (s *OrchestratorTestSuite) TestConditionToggleTwiceRestoresStatuses() {
	original := slices.Clone(s.actor.Statuses)

	s.mockGame.EXPECT().
		HasCondition(s.actor, "prone").
		DoAndReturn(func(actor *wng.Actor, id string) bool { return actor.HasStatus(id) }).
		Times(2)
	s.mockGame.EXPECT().
		AddCondition(gomock.Any(), s.actor, "prone").
		DoAndReturn(func(_ context.Context, actor *wng.Actor, id string) error {
			actor.Statuses = append(actor.Statuses, id)
			return nil
		})
	s.mockGame.EXPECT().
		RemoveCondition(gomock.Any(), s.actor, "prone").
		DoAndReturn(func(_ context.Context, actor *wng.Actor, id string) error {
			actor.Statuses = slices.DeleteFunc(actor.Statuses, func(status string) bool { return status == id })
			return nil
		})
	mocks.ExpectForceUpdates(s.mockRefresher, 2)

	s.NoError(s.click(leftClick, hud.ActionTypeCondition, "prone"))
	s.True(s.actor.HasStatus("prone"))

	s.NoError(s.click(leftClick, hud.ActionTypeCondition, "prone"))
	s.Equal(len(original), len(s.actor.Statuses))
	s.False(s.actor.HasStatus("prone"))
}

func (s *OrchestratorTestSuite) TestConditionFailureSkipsRefresh() {
	s.mockGame.EXPECT().HasCondition(s.actor, "pinned").Return(false)
	s.mockGame.EXPECT().AddCondition(gomock.Any(), s.actor, "pinned").Return(errors.Internal("boom"))

	err := s.click(leftClick, hud.ActionTypeCondition, "pinned")
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) expectCombatant(combatant *engine.Combatant) {
	s.mockCombat.EXPECT().Started().Return(true)
	s.mockCombat.EXPECT().CombatantByActor(s.actor.ID).Return(combatant)
}

func (s *OrchestratorTestSuite) TestSetTurnActivatesWaitingCombatant() {
	s.expectCombatant(&engine.Combatant{ID: "c1", ActorID: s.actor.ID})
	gomock.InOrder(
		s.mockCombat.EXPECT().SetTurn(gomock.Any(), "c1").Return(nil),
		s.mockRefresher.EXPECT().ForceUpdate(gomock.Any()).Return(nil),
	)

	s.NoError(s.click(leftClick, hud.ActionTypeUtility, hud.UtilitySetTurn))
}

func (s *OrchestratorTestSuite) TestSetTurnIgnoresCurrentOrComplete() {
	s.expectCombatant(&engine.Combatant{ID: "c1", ActorID: s.actor.ID, IsCurrent: true})
	s.NoError(s.click(leftClick, hud.ActionTypeUtility, hud.UtilitySetTurn))

	s.expectCombatant(&engine.Combatant{ID: "c1", ActorID: s.actor.ID, IsComplete: true})
	s.NoError(s.click(leftClick, hud.ActionTypeUtility, hud.UtilitySetTurn))
}

func (s *OrchestratorTestSuite) TestEndTurnRunsScriptsThenCompletes() {
	combatant := &engine.Combatant{ID: "c1", ActorID: s.actor.ID, IsCurrent: true}
	s.expectCombatant(combatant)
	gomock.InOrder(
		s.mockCombat.EXPECT().RunEndTurnScripts(gomock.Any(), combatant).Return(nil),
		s.mockCombat.EXPECT().SetComplete(gomock.Any(), "c1").Return(nil),
		s.mockRefresher.EXPECT().ForceUpdate(gomock.Any()).Return(nil),
	)

	s.NoError(s.click(leftClick, hud.ActionTypeUtility, hud.UtilityEndTurn))
}

func (s *OrchestratorTestSuite) TestEndTurnIgnoresWaitingCombatant() {
	s.expectCombatant(&engine.Combatant{ID: "c1", ActorID: s.actor.ID})

	s.NoError(s.click(leftClick, hud.ActionTypeUtility, hud.UtilityEndTurn))
}

func (s *OrchestratorTestSuite) TestUtilityWithoutCombat() {
	s.mockCombat.EXPECT().Started().Return(false)
	s.NoError(s.click(leftClick, hud.ActionTypeUtility, hud.UtilitySetTurn))

	s.expectCombatant(nil)
	s.NoError(s.click(leftClick, hud.ActionTypeUtility, hud.UtilitySetTurn))
}

func (s *OrchestratorTestSuite) TestFanOutRunsEachActorToCompletionInOrder() {
	actorA := builders.NewActorBuilder().WithID("a").WithType(wng.ActorTypeAgent).Build()
	actorB := builders.NewActorBuilder().WithID("b").WithType(wng.ActorTypeAgent).Build()
	threat := testutils.CreateTestThreat()

	gomock.InOrder(
		s.mockGame.EXPECT().HasCondition(actorA, "fear").Return(false),
		s.mockGame.EXPECT().AddCondition(gomock.Any(), actorA, "fear").Return(nil),
		s.mockRefresher.EXPECT().ForceUpdate(gomock.Any()).Return(nil),
		s.mockGame.EXPECT().HasCondition(actorB, "fear").Return(true),
		s.mockGame.EXPECT().RemoveCondition(gomock.Any(), actorB, "fear").Return(nil),
		s.mockRefresher.EXPECT().ForceUpdate(gomock.Any()).Return(nil),
	)

	err := s.orchestrator.HandleActionClick(s.ctx, &roll.ClickInput{
		Event:        leftClick,
		EncodedValue: "condition|fear",
		Controlled: []*host.Token{
			{ID: "token-a", Actor: actorA},
			{ID: "token-threat", Actor: threat},
			{ID: "token-empty"},
			nil,
			{ID: "token-b", Actor: actorB},
		},
	})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestFanOutStopsAtFirstError() {
	actorA := builders.NewActorBuilder().WithID("a").Build()
	actorB := builders.NewActorBuilder().WithID("b").Build()

	s.mockGame.EXPECT().
		SetupSkillTest(gomock.Any(), actorA, "awareness").
		Return(errors.Unavailable("dice tray closed"))

	err := s.orchestrator.HandleActionClick(s.ctx, &roll.ClickInput{
		Event:        leftClick,
		EncodedValue: "skill|awareness",
		Controlled:   []*host.Token{{ID: "a", Actor: actorA}, {ID: "b", Actor: actorB}},
	})
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestFanOutAllowlistIsConfigurable() {
	router := s.newRouter(&roll.Config{
		GameSystem:       s.mockGame,
		Refresher:        s.mockRefresher,
		FanOutActorTypes: []wng.ActorType{wng.ActorTypeThreat},
	})
	agent := testutils.CreateTestAgent()
	threat := testutils.CreateTestThreat()

	s.mockGame.EXPECT().SetupAttributeTest(gomock.Any(), threat, "strength").Return(nil)

	err := router.HandleActionClick(s.ctx, &roll.ClickInput{
		Event:        leftClick,
		EncodedValue: "attribute|strength",
		Controlled:   []*host.Token{{ID: "agent", Actor: agent}, {ID: "threat", Actor: threat}},
	})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestRenderItemShortCircuitsOnPlainRightClick() {
	s.mockRenderer.EXPECT().RenderItem(gomock.Any(), s.actor, testutils.TestAuspexID).Return(nil)

	s.NoError(s.click(rightClick, hud.ActionTypeItem, testutils.TestAuspexID))
}

func (s *OrchestratorTestSuite) TestRenderItemSkipsFanOut() {
	agent := testutils.CreateTestAgent()

	// no selected actor means nothing to render, and no fan-out either
	err := s.orchestrator.HandleActionClick(s.ctx, &roll.ClickInput{
		Event:        rightClick,
		EncodedValue: "item|" + testutils.TestAuspexID,
		Controlled:   []*host.Token{{ID: "agent", Actor: agent}},
	})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestRenderItemNeedsPlainRightClick() {
	// modifiers and left clicks fall through to the inert item dispatch
	s.NoError(s.click(host.ClickEvent{Button: host.MouseButtonRight, Shift: true}, hud.ActionTypeItem, testutils.TestAuspexID))
	s.NoError(s.click(leftClick, hud.ActionTypeItem, testutils.TestAuspexID))
}

func (s *OrchestratorTestSuite) TestRenderItemNeedsSettingAndRenderer() {
	s.orchestrator = s.newRouter(&roll.Config{
		GameSystem:   s.mockGame,
		Refresher:    s.mockRefresher,
		ItemRenderer: s.mockRenderer,
	})
	s.NoError(s.click(rightClick, hud.ActionTypeItem, testutils.TestAuspexID))

	s.orchestrator = s.newRouter(&roll.Config{
		GameSystem:             s.mockGame,
		Refresher:              s.mockRefresher,
		RenderItemOnRightClick: true,
	})
	s.NoError(s.click(rightClick, hud.ActionTypeItem, testutils.TestAuspexID))
}

func (s *OrchestratorTestSuite) TestHoverAndGroupClickAreInert() {
	s.NoError(s.orchestrator.HandleActionHover(s.ctx, &roll.HoverInput{EncodedValue: "gear|x", Hovering: true}))
	s.NoError(s.orchestrator.HandleGroupClick(s.ctx, &roll.GroupClickInput{
		Event: rightClick,
		Group: hud.SystemGroup(hud.GroupGear),
	}))
}

func (s *OrchestratorTestSuite) TestNilInput() {
	s.True(errors.IsInvalidArgument(s.orchestrator.HandleActionClick(s.ctx, nil)))
}
