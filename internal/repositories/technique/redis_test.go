package technique_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
	"github.com/KirkDiggler/monster-api/internal/repositories/technique"
	"github.com/KirkDiggler/monster-api/internal/testutils"
)

type RedisTechniqueTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo technique.Repository
	ctx  context.Context
}

func TestRedisTechniqueTestSuite(t *testing.T) {
	suite.Run(t, new(RedisTechniqueTestSuite))
}

func (s *RedisTechniqueTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()

	repo, err := technique.NewRedis(&technique.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisTechniqueTestSuite) TestNewRedis() {
	_, err := technique.NewRedis(nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "config cannot be nil")

	_, err = technique.NewRedis(&technique.RedisConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "client cannot be nil")
}

func (s *RedisTechniqueTestSuite) TestSeedAndList() {
	fixtures := testutils.FixtureTechniques()

	out, err := s.repo.Seed(s.ctx, technique.SeedInput{Techniques: fixtures})
	s.Require().NoError(err)
	s.Equal(len(fixtures), out.Stored)
	s.True(s.mr.Exists(technique.GetKey(testutils.TechniqueFireClaw)))

	listed, err := s.repo.List(s.ctx, technique.ListInput{})
	s.Require().NoError(err)
	s.Equal(fixtures, listed.Techniques)
}

func (s *RedisTechniqueTestSuite) TestSeedReplacesPreviousCatalog() {
	_, err := s.repo.Seed(s.ctx, technique.SeedInput{Techniques: testutils.FixtureTechniques()})
	s.Require().NoError(err)

	replacement := []*tuxemon.Technique{
		{Slug: "ember", Types: []tuxemon.ElementType{tuxemon.ElementFire}, Randomly: false},
	}
	_, err = s.repo.Seed(s.ctx, technique.SeedInput{Techniques: replacement})
	s.Require().NoError(err)

	listed, err := s.repo.List(s.ctx, technique.ListInput{})
	s.Require().NoError(err)
	s.Equal(replacement, listed.Techniques)
	s.False(s.mr.Exists(technique.GetKey(testutils.TechniqueFireClaw)))
}

func (s *RedisTechniqueTestSuite) TestListEmpty() {
	listed, err := s.repo.List(s.ctx, technique.ListInput{})
	s.Require().NoError(err)
	s.Empty(listed.Techniques)
}

func (s *RedisTechniqueTestSuite) TestSeedValidation() {
	_, err := s.repo.Seed(s.ctx, technique.SeedInput{Techniques: []*tuxemon.Technique{{}}})
	s.True(errors.IsInvalidArgument(err))

	dup := []*tuxemon.Technique{{Slug: "a"}, {Slug: "a"}}
	_, err = s.repo.Seed(s.ctx, technique.SeedInput{Techniques: dup})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisTechniqueTestSuite) TestListMissingRecord() {
	_, err := s.repo.Seed(s.ctx, technique.SeedInput{Techniques: testutils.FixtureTechniques()})
	s.Require().NoError(err)
	s.mr.Del(technique.GetKey(testutils.TechniqueEmber))

	_, err = s.repo.List(s.ctx, technique.ListInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
}

func TestRedisFailures(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()

	repo, err := technique.NewRedis(&technique.RedisConfig{Client: client})
	require.NoError(t, err)

	mock.ExpectLRange("techniques:index", 0, -1).SetErr(fmt.Errorf("connection reset"))
	_, err = repo.List(ctx, technique.ListInput{})
	require.True(t, errors.IsInternal(err), "got %v", err)

	mock.ExpectLRange("techniques:index", 0, -1).SetErr(fmt.Errorf("connection reset"))
	_, err = repo.Seed(ctx, technique.SeedInput{Techniques: testutils.FixtureTechniques()})
	require.True(t, errors.IsInternal(err), "got %v", err)

	require.NoError(t, mock.ExpectationsWereMet())
}
