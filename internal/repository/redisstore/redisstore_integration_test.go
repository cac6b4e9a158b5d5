//go:build integration

package redisstore

import (
	"context"
	"errors"
	"testing"

	"people/internal/models"
	"people/internal/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisRepositorySuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	url       string
	client    *redis.Client
	repo      *RedisRepository
}

func TestRedisRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisRepositorySuite))
}

func (s *RedisRepositorySuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err, "failed to start redis container")
	s.container = container

	addr, err := container.ConnectionString(ctx)
	s.Require().NoError(err)

	s.url = addr

	opts, err := redis.ParseURL(addr)
	s.Require().NoError(err)
	s.client = redis.NewClient(opts)
	s.Require().NoError(s.client.Ping(ctx).Err())

	s.repo = NewRepository(s.client, "people_test", nil)
}

func (s *RedisRepositorySuite) TearDownSuite() {
	ctx := context.Background()
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(ctx)
	}
}

func (s *RedisRepositorySuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func johnSmith() *models.Person {
	return &models.Person{
		Name:        "John Smith",
		Weight:      models.Float64(70),
		Height:      models.Float64(1.8),
		DateOfBirth: "10/10/1990",
		Gender:      models.GenderMale,
	}
}

func (s *RedisRepositorySuite) TestRoundTrip() {
	ctx := context.Background()

	stored, err := s.repo.Create(ctx, "", johnSmith())
	s.Require().NoError(err)
	s.NotEmpty(stored.ID)

	found, err := s.repo.FindByID(ctx, stored.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(*stored, *found)

	people, err := s.repo.FindAll(ctx)
	s.Require().NoError(err)
	s.Len(people, 1)
}

func (s *RedisRepositorySuite) TestFindAllEmpty() {
	people, err := s.repo.FindAll(context.Background())
	s.Require().NoError(err)
	s.NotNil(people)
	s.Empty(people)
}

func (s *RedisRepositorySuite) TestFindByIDAbsent() {
	found, err := s.repo.FindByID(context.Background(), uuid.NewString())
	s.NoError(err)
	s.Nil(found)
}

func (s *RedisRepositorySuite) TestUpdateReportsMatches() {
	ctx := context.Background()

	stored, err := s.repo.Create(ctx, "", johnSmith())
	s.Require().NoError(err)

	replacement := stored.WithID(stored.ID)
	replacement.Name = "Jeff Smith"
	matched, err := s.repo.Update(ctx, &replacement)
	s.Require().NoError(err)
	s.Equal(int64(1), matched)

	found, err := s.repo.FindByID(ctx, stored.ID)
	s.Require().NoError(err)
	s.Equal("Jeff Smith", found.Name)

	missing := replacement.WithID(uuid.NewString())
	matched, err = s.repo.Update(ctx, &missing)
	s.Require().NoError(err)
	s.Equal(int64(0), matched)

	exists, err := s.client.HExists(ctx, "people_test", missing.ID).Result()
	s.Require().NoError(err)
	s.False(exists, "update must not insert")
}

func (s *RedisRepositorySuite) TestRemoveReportsDeletions() {
	ctx := context.Background()

	stored, err := s.repo.Create(ctx, "", johnSmith())
	s.Require().NoError(err)

	deleted, err := s.repo.RemoveByID(ctx, stored.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	deleted, err = s.repo.RemoveByID(ctx, stored.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), deleted)
}

func (s *RedisRepositorySuite) TestMalformedIdentifier() {
	_, err := s.repo.FindByID(context.Background(), "123456")
	s.True(errors.Is(err, shared.ErrInvalidIdentifier))
}

func (s *RedisRepositorySuite) TestDial() {
	ctx := context.Background()

	repo, err := Dial(ctx, s.url, "", nil)
	s.Require().NoError(err)
	defer repo.Close()

	s.Equal(DefaultKey, repo.key)
	s.NoError(repo.Health(ctx))

	_, err = Dial(ctx, "not a url", "", nil)
	s.Error(err)
}
