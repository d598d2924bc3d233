package rpgtoolkit_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/token-action-hud-wng/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/pkg/clock"
	"github.com/KirkDiggler/token-action-hud-wng/internal/pkg/idgen"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/actor"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/chatlog"
	"github.com/KirkDiggler/token-action-hud-wng/internal/testutils"
)

// sequenceRoller returns faces in order, then repeats the last one
type sequenceRoller struct {
	faces []int
	next  int
}

func (r *sequenceRoller) Roll(_ int) (int, error) {
	if r.next >= len(r.faces) {
		return r.faces[len(r.faces)-1], nil
	}
	face := r.faces[r.next]
	r.next++
	return face, nil
}

func (r *sequenceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

type AdapterTestSuite struct {
	suite.Suite
	ctx     context.Context
	roller  *sequenceRoller
	actors  *actor.InMemoryRepository
	chat    *chatlog.Store
	bus     events.EventBus
	adapter *rpgtoolkit.Adapter
	agent   *wng.Actor
	rolled  int
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = &sequenceRoller{faces: []int{3}}
	s.actors = actor.NewInMemory()
	s.bus = events.NewBus()
	s.rolled = 0
	s.bus.SubscribeFunc(rpgtoolkit.EventTestRolled, 0, func(_ context.Context, _ events.Event) error {
		s.rolled++
		return nil
	})

	chat, err := chatlog.Open(&chatlog.Config{
		Path:  ":memory:",
		Clock: clock.New(),
		IDGen: idgen.NewSequential("msg"),
	})
	s.Require().NoError(err)
	s.chat = chat

	s.adapter, err = rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   s.bus,
		DiceRoller: s.roller,
		Actors:     s.actors,
		Chat:       s.chat,
	})
	s.Require().NoError(err)

	s.agent = testutils.CreateTestAgent()
	_, err = s.actors.Save(s.ctx, actor.SaveInput{Actor: s.agent})
	s.Require().NoError(err)
}

func (s *AdapterTestSuite) TearDownTest() {
	s.NoError(s.chat.Close())
}

func TestAdapterTestSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) lastMessage() *wng.ChatMessage {
	out, err := s.chat.List(s.ctx, chatlog.ListInput{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(out.Messages, 1)
	return out.Messages[0]
}

func (s *AdapterTestSuite) TestNewAdapterValidation() {
	_, err := rpgtoolkit.NewAdapter(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: s.bus})
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestWeaponTestRollsItemSkill() {
	s.roller.faces = []int{4, 4, 4, 4, 4, 6}
	bolter, _ := s.agent.Item(testutils.TestBolterID)

	err := s.adapter.SetupWeaponTest(s.ctx, s.agent, bolter)
	s.Require().NoError(err)

	msg := s.lastMessage()
	s.Equal(wng.ChatKindRoll, msg.Kind)
	s.Equal("Bolter", msg.Content)
	s.Equal("Sister Amalthea", msg.Speaker)
	s.Require().NotNil(msg.Roll)
	s.Equal("ballisticSkill", msg.Roll.Test)
	s.Equal(6, msg.Roll.Pool)
	s.Equal(7, msg.Roll.Icons)
	s.True(msg.Roll.Critical)
	s.Equal(1, s.rolled)
}

func (s *AdapterTestSuite) TestPowerTestRollsPsychicMastery() {
	smite, _ := s.agent.Item(testutils.TestSmiteID)

	s.Require().NoError(s.adapter.SetupPowerTest(s.ctx, s.agent, smite))

	msg := s.lastMessage()
	s.Equal("psychicMastery", msg.Roll.Test)
	s.Equal(4, msg.Roll.Pool)
}

func (s *AdapterTestSuite) TestAbilityRollUsesItemDice() {
	rage, _ := s.agent.Item(testutils.TestRageID)

	s.Require().NoError(s.adapter.SetupAbilityRoll(s.ctx, s.agent, rage))

	msg := s.lastMessage()
	s.Equal(2, msg.Roll.Pool)
	s.Len(msg.Roll.Dice, 1, "the wrath die is one of the item's dice")
	s.Equal("Righteous Rage", msg.Content)
}

func (s *AdapterTestSuite) TestAbilityRollWithoutDice() {
	err := s.adapter.SetupAbilityRoll(s.ctx, s.agent, &wng.Item{ID: "x", Type: wng.ItemTypeAbility})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *AdapterTestSuite) TestAttributeAndSkillTests() {
	s.Require().NoError(s.adapter.SetupAttributeTest(s.ctx, s.agent, "toughness"))
	msg := s.lastMessage()
	s.Equal("ATTRIBUTE.toughness", msg.Content)
	s.Equal(4, msg.Roll.Pool)

	s.Require().NoError(s.adapter.SetupSkillTest(s.ctx, s.agent, "weaponSkill"))
	msg = s.lastMessage()
	s.Equal(5, msg.Roll.Pool)

	err := s.adapter.SetupSkillTest(s.ctx, s.agent, "pilot")
	s.True(errors.IsNotFound(err))
}

func (s *AdapterTestSuite) TestGenericTestsMapToStats() {
	testCases := map[string]int{
		"determination": 4,
		"corruption":    4,
		"mutation":      4,
		"fear":          3,
		"terror":        3,
		"influence":     3,
	}

	for test, pool := range testCases {
		s.Require().NoError(s.adapter.SetupGenericTest(s.ctx, s.agent, test), test)
		msg := s.lastMessage()
		s.Equal(test, msg.Content)
		s.Equal(pool, msg.Roll.Pool, test)
	}

	err := s.adapter.SetupGenericTest(s.ctx, s.agent, "armour")
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestConditionsPersist() {
	s.False(s.adapter.HasCondition(s.agent, "prone"))

	s.Require().NoError(s.adapter.AddCondition(s.ctx, s.agent, "prone"))
	s.True(s.adapter.HasCondition(s.agent, "prone"))

	stored, err := s.actors.Get(s.ctx, actor.GetInput{ID: s.agent.ID})
	s.Require().NoError(err)
	s.Equal([]string{"prone"}, stored.Actor.Statuses)

	s.Require().NoError(s.adapter.AddCondition(s.ctx, s.agent, "prone"))
	s.Len(s.agent.Statuses, 1, "adding twice keeps one entry")

	s.Require().NoError(s.adapter.RemoveCondition(s.ctx, s.agent, "prone"))
	s.False(s.adapter.HasCondition(s.agent, "prone"))

	stored, err = s.actors.Get(s.ctx, actor.GetInput{ID: s.agent.ID})
	s.Require().NoError(err)
	s.Empty(stored.Actor.Statuses)
}

func (s *AdapterTestSuite) TestSetEquippedPersists() {
	armour, _ := s.agent.Item(testutils.TestArmourID)

	s.Require().NoError(s.adapter.SetEquipped(s.ctx, s.agent, armour, false))
	s.False(armour.Equipped)

	stored, err := s.actors.Get(s.ctx, actor.GetInput{ID: s.agent.ID})
	s.Require().NoError(err)
	item, ok := stored.Actor.Item(testutils.TestArmourID)
	s.Require().True(ok)
	s.False(item.Equipped)
}

func (s *AdapterTestSuite) TestSetEquippedRejectsGear() {
	auspex, _ := s.agent.Item(testutils.TestAuspexID)

	err := s.adapter.SetEquipped(s.ctx, s.agent, auspex, true)
	s.True(errors.IsFailedPrecondition(err))

	err = s.adapter.SetEquipped(s.ctx, s.agent, &wng.Item{ID: "stranger"}, true)
	s.True(errors.IsNotFound(err))
}

func (s *AdapterTestSuite) TestSendToChat() {
	talent, _ := s.agent.Item(testutils.TestTalentID)

	s.Require().NoError(s.adapter.SendToChat(s.ctx, s.agent, talent))

	msg := s.lastMessage()
	s.Equal(wng.ChatKindItem, msg.Kind)
	s.Equal("Deadshot", msg.Content)
	s.Nil(msg.Roll)
	s.Equal(0, s.rolled)
}

func (s *AdapterTestSuite) TestRenderItem() {
	s.Require().NoError(s.adapter.RenderItem(s.ctx, s.agent, testutils.TestTalentID))

	msg := s.lastMessage()
	s.Equal(wng.ChatKindSheet, msg.Kind)
	s.Equal("Deadshot", msg.Content)
}

func (s *AdapterTestSuite) TestRenderItemNotOwned() {
	err := s.adapter.RenderItem(s.ctx, s.agent, "missing")
	s.True(errors.IsNotFound(err))
}
