//go:build integration

package userrepo_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"userhub/internal/domain"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/cache"
	"userhub/internal/pkg/logger"
	"userhub/internal/pkg/metrics"
	"userhub/internal/repository/userrepo"
	"userhub/internal/testutil/containers"
)

type UserRepositorySuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	redis    *containers.RedisContainer
	repo     *userrepo.UserRepository
}

func TestUserRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.redis = mgr.GetRedis(s.T())

	client, err := cache.NewRedisClientFromURL(context.Background(), s.redis.URL)
	s.Require().NoError(err)

	log := logger.New(io.Discard, "error")
	aside := cache.NewAside(client, time.Minute, "user", log, metrics.New(prometheus.NewRegistry()))
	s.repo = userrepo.NewUserRepository(s.postgres.DB, aside, 5*time.Second, log)
}

func (s *UserRepositorySuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "users"))
	s.Require().NoError(s.redis.FlushAll(ctx))
}

func newUser(name string, age int, email, phone string) domain.User {
	return domain.User{Name: name, Age: age, Email: email, Phone: phone}
}

func (s *UserRepositorySuite) seed() (domain.User, domain.User) {
	ctx := context.Background()
	john, err := s.repo.Create(ctx, newUser("John", 30, "john@gmail.com", "+380978657654"))
	s.Require().NoError(err)
	anna, err := s.repo.Create(ctx, newUser("Anna", 25, "anna@gmail.com", "+380977035432"))
	s.Require().NoError(err)
	return john, anna
}

func (s *UserRepositorySuite) TestCreateThenFindByID() {
	john, _ := s.seed()

	s.NotZero(john.ID)
	got, err := s.repo.FindByID(context.Background(), john.ID)
	s.Require().NoError(err)
	s.Equal(john, got)
}

func (s *UserRepositorySuite) TestFindAllSortedByName() {
	s.seed()

	all, err := s.repo.FindAll(context.Background())
	s.Require().NoError(err)
	s.Equal("John", all[0].Name)

	sorted, err := s.repo.FindAllSortedByName(context.Background())
	s.Require().NoError(err)
	s.Require().Len(sorted, 2)
	s.Equal("Anna", sorted[0].Name)
	s.Equal("John", sorted[1].Name)
}

func (s *UserRepositorySuite) TestFindByFilterUsesOr() {
	john, anna := s.seed()
	name := "John"
	age := 25

	users, err := s.repo.FindByFilter(context.Background(), domain.UserFilter{Name: &name, Age: &age})
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.ElementsMatch([]int64{john.ID, anna.ID}, []int64{users[0].ID, users[1].ID})

	none, err := s.repo.FindByFilter(context.Background(), domain.UserFilter{})
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *UserRepositorySuite) TestCount() {
	s.seed()

	total, err := s.repo.Count(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}

func (s *UserRepositorySuite) TestUpdateReflectsPayloadAndInvalidatesCache() {
	ctx := context.Background()
	john, _ := s.seed()

	// Aquece o cache com a versão antiga.
	_, err := s.repo.FindByID(ctx, john.ID)
	s.Require().NoError(err)

	patch := newUser("Johnny", 31, "johnny@gmail.com", "+380971111111")
	updated, err := s.repo.Update(ctx, john.ID, patch)
	s.Require().NoError(err)
	s.Equal(john.ID, updated.ID)

	got, err := s.repo.FindByID(ctx, john.ID)
	s.Require().NoError(err)
	s.Equal("Johnny", got.Name)
	s.Equal(31, got.Age)
	s.Equal("johnny@gmail.com", got.Email)
	s.Equal("+380971111111", got.Phone)
}

func (s *UserRepositorySuite) TestUpdateMissingIsNotFound() {
	_, err := s.repo.Update(context.Background(), 999, newUser("X", 1, "x@x.com", "+3809711111"))
	s.IsType(&apperror.NotFoundError{}, err)
}

func (s *UserRepositorySuite) TestDeleteThenFindIsNotFound() {
	ctx := context.Background()
	john, _ := s.seed()

	s.Require().NoError(s.repo.Delete(ctx, john.ID))

	_, err := s.repo.FindByID(ctx, john.ID)
	s.IsType(&apperror.NotFoundError{}, err)

	// Remoção repetida também é NotFound.
	s.IsType(&apperror.NotFoundError{}, s.repo.Delete(ctx, john.ID))
}

func (s *UserRepositorySuite) TestDuplicateEmailIsConflict() {
	s.seed()

	_, err := s.repo.Create(context.Background(), newUser("Other", 40, "john@gmail.com", "+380970000000"))
	s.IsType(&apperror.ConflictError{}, err)
}
