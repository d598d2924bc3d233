package actor_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/actor"
	"github.com/KirkDiggler/token-action-hud-wng/internal/testutils"
)

// RepositoryTestSuite runs the same contract against each implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (actor.Repository, func())
	repo    actor.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo, s.cleanup = s.newRepo()
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (actor.Repository, func()) {
			return actor.NewInMemory(), func() {}
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (actor.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := actor.NewRedis(&actor.RedisConfig{Client: client})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func (s *RepositoryTestSuite) TestSaveAndGetRoundTrip() {
	agent := testutils.CreateTestAgent()
	agent.Statuses = []string{"prone"}
	agent.Scripts = []*wng.Script{{Trigger: wng.ScriptTriggerEndTurn, Code: "chat('done')"}}

	_, err := s.repo.Save(s.ctx, actor.SaveInput{Actor: agent})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, actor.GetInput{ID: agent.ID})
	s.Require().NoError(err)
	s.Equal(agent, out.Actor)
	s.NotSame(agent, out.Actor)
}

func (s *RepositoryTestSuite) TestGetReturnsCopies() {
	agent := testutils.CreateTestAgent()
	_, err := s.repo.Save(s.ctx, actor.SaveInput{Actor: agent})
	s.Require().NoError(err)

	first, err := s.repo.Get(s.ctx, actor.GetInput{ID: agent.ID})
	s.Require().NoError(err)
	first.Actor.Items[0].Equipped = false

	second, err := s.repo.Get(s.ctx, actor.GetInput{ID: agent.ID})
	s.Require().NoError(err)
	s.True(second.Actor.Items[0].Equipped)
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, actor.GetInput{ID: "nobody"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, actor.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestSaveValidates() {
	_, err := s.repo.Save(s.ctx, actor.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, actor.SaveInput{Actor: &wng.Actor{Name: "No ID"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestListOrderedAndFiltered() {
	for _, a := range []*wng.Actor{testutils.CreateTestVehicle(), testutils.CreateTestThreat(), testutils.CreateTestAgent()} {
		_, err := s.repo.Save(s.ctx, actor.SaveInput{Actor: a})
		s.Require().NoError(err)
	}

	all, err := s.repo.List(s.ctx, actor.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(all.Actors, 3)
	s.Equal(testutils.TestAgentID, all.Actors[0].ID)
	s.Equal(testutils.TestThreatID, all.Actors[1].ID)
	s.Equal(testutils.TestVehicleID, all.Actors[2].ID)

	threats, err := s.repo.List(s.ctx, actor.ListInput{Type: wng.ActorTypeThreat})
	s.Require().NoError(err)
	s.Require().Len(threats.Actors, 1)
	s.Equal(testutils.TestThreatID, threats.Actors[0].ID)
}

func (s *RepositoryTestSuite) TestDelete() {
	agent := testutils.CreateTestAgent()
	_, err := s.repo.Save(s.ctx, actor.SaveInput{Actor: agent})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, actor.DeleteInput{ID: agent.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, actor.GetInput{ID: agent.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, actor.DeleteInput{ID: agent.ID})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, actor.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Actors)
}

func TestRedisListCleansDanglingIndex(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClientWithContext(t, func(mr *miniredis.Miniredis) {
		_, _ = mr.SAdd("actor:ids", "ghost")
	})
	defer cleanup()

	repo, err := actor.NewRedis(&actor.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}

	out, err := repo.List(context.Background(), actor.ListInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Actors) != 0 {
		t.Fatalf("expected no actors, got %d", len(out.Actors))
	}

	members, err := client.SMembers(context.Background(), "actor:ids").Result()
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 0 {
		t.Fatalf("expected index to be cleaned, got %v", members)
	}
}
