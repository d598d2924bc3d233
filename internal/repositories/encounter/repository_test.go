package encounter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/repositories/encounter"
	"github.com/KirkDiggler/token-action-hud-wng/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (encounter.Repository, func())
	repo    encounter.Repository
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
		newRepo: func() (encounter.Repository, func()) {
			return encounter.NewInMemory(), func() {}
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (encounter.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := encounter.NewRedis(&encounter.RedisConfig{Client: client})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func (s *RepositoryTestSuite) sampleEncounter() *wng.Encounter {
	return &wng.Encounter{
		ID:        "enc-1",
		Started:   true,
		Round:     2,
		CurrentID: "c-agent",
		Combatants: []*wng.Combatant{
			{ID: "c-agent", ActorID: testutils.TestAgentID, Name: "Sister Amalthea"},
			{ID: "c-threat", ActorID: testutils.TestThreatID, Name: "Ork Boy", Complete: true},
		},
	}
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	enc := s.sampleEncounter()
	_, err := s.repo.Save(s.ctx, encounter.SaveInput{Encounter: enc})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, encounter.GetInput{ID: enc.ID})
	s.Require().NoError(err)
	s.Equal(enc, out.Encounter)
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, encounter.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestSaveValidates() {
	_, err := s.repo.Save(s.ctx, encounter.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, encounter.SaveInput{Encounter: &wng.Encounter{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestActiveLifecycle() {
	_, err := s.repo.GetActive(s.ctx, encounter.GetActiveInput{})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.SetActive(s.ctx, encounter.SetActiveInput{ID: "enc-1"})
	s.True(errors.IsNotFound(err), "cannot activate an unknown encounter")

	enc := s.sampleEncounter()
	_, err = s.repo.Save(s.ctx, encounter.SaveInput{Encounter: enc})
	s.Require().NoError(err)

	_, err = s.repo.SetActive(s.ctx, encounter.SetActiveInput{ID: enc.ID})
	s.Require().NoError(err)

	active, err := s.repo.GetActive(s.ctx, encounter.GetActiveInput{})
	s.Require().NoError(err)
	s.Equal(enc.ID, active.Encounter.ID)
	s.Equal("c-agent", active.Encounter.CurrentID)

	_, err = s.repo.SetActive(s.ctx, encounter.SetActiveInput{})
	s.Require().NoError(err)

	_, err = s.repo.GetActive(s.ctx, encounter.GetActiveInput{})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestActiveReflectsLatestSave() {
	enc := s.sampleEncounter()
	_, err := s.repo.Save(s.ctx, encounter.SaveInput{Encounter: enc})
	s.Require().NoError(err)
	_, err = s.repo.SetActive(s.ctx, encounter.SetActiveInput{ID: enc.ID})
	s.Require().NoError(err)

	enc.Round = 3
	enc.CurrentID = "c-threat"
	_, err = s.repo.Save(s.ctx, encounter.SaveInput{Encounter: enc})
	s.Require().NoError(err)

	active, err := s.repo.GetActive(s.ctx, encounter.GetActiveInput{})
	s.Require().NoError(err)
	s.Equal(3, active.Encounter.Round)
	s.Equal("c-threat", active.Encounter.CurrentID)
}
