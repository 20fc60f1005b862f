//go:build integration

package houserepo_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"userhub/internal/domain"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/cache"
	"userhub/internal/pkg/logger"
	"userhub/internal/repository/houserepo"
	"userhub/internal/testutil/containers"
)

type HouseRepositorySuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	redis    *containers.RedisContainer
	repo     *houserepo.HouseRepository
}

func TestHouseRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(HouseRepositorySuite))
}

func (s *HouseRepositorySuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.redis = mgr.GetRedis(s.T())

	client, err := cache.NewRedisClientFromURL(context.Background(), s.redis.URL)
	s.Require().NoError(err)

	log := logger.New(io.Discard, "error")
	aside := cache.NewAside(client, time.Minute, "house", log, nil)
	s.repo = houserepo.NewHouseRepository(s.postgres.DB, aside, 5*time.Second, log)
}

func (s *HouseRepositorySuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "user_house"))
	s.Require().NoError(s.redis.FlushAll(ctx))
}

func newHouse(phone, country, town string, house, flat int) domain.UserHouse {
	return domain.UserHouse{
		UserName:    "John_1",
		UserPhone:   phone,
		Country:     country,
		Town:        town,
		Address:     "Augusta",
		HouseNumber: house,
		FlatNumber:  flat,
	}
}

func (s *HouseRepositorySuite) TestCreateThenFindByHouseAndFlat() {
	ctx := context.Background()
	created, err := s.repo.Create(ctx, newHouse("+380978657654", "Portugal", "Lisbon", 12, 4))
	s.Require().NoError(err)
	s.NotZero(created.ID)

	got, err := s.repo.FindByHouseAndFlat(ctx, 12, 4)
	s.Require().NoError(err)
	s.Equal(created, got)

	_, err = s.repo.FindByHouseAndFlat(ctx, 12, 5)
	s.IsType(&apperror.NotFoundError{}, err)
}

func (s *HouseRepositorySuite) TestFindByCountryIsCaseInsensitive() {
	ctx := context.Background()
	_, err := s.repo.Create(ctx, newHouse("+380978657654", "Portugal", "Lisbon", 12, 4))
	s.Require().NoError(err)
	_, err = s.repo.Create(ctx, newHouse("+380977035432", "Poland", "Warsaw", 1, 1))
	s.Require().NoError(err)

	houses, err := s.repo.FindByCountry(ctx, "PORTUGAL")
	s.Require().NoError(err)
	s.Require().Len(houses, 1)
	s.Equal("Lisbon", houses[0].Town)

	byTown, err := s.repo.FindByTown(ctx, "Warsaw")
	s.Require().NoError(err)
	s.Len(byTown, 1)
}

func (s *HouseRepositorySuite) TestUpdateWritesTown() {
	ctx := context.Background()
	_, err := s.repo.Create(ctx, newHouse("+380978657654", "Portugal", "Lisbon", 12, 4))
	s.Require().NoError(err)

	patch := newHouse("+380971111111", "Spain", "Madrid", 12, 4)
	patch.Address = "Gran-Via"
	_, err = s.repo.UpdateByHouseAndFlat(ctx, 12, 4, patch)
	s.Require().NoError(err)

	got, err := s.repo.FindByHouseAndFlat(ctx, 12, 4)
	s.Require().NoError(err)
	s.Equal("Madrid", got.Town)
	s.Equal("Gran-Via", got.Address)
	s.Equal("Spain", got.Country)
	s.Equal("+380971111111", got.UserPhone)
}

func (s *HouseRepositorySuite) TestDeleteThenFindIsNotFound() {
	ctx := context.Background()
	_, err := s.repo.Create(ctx, newHouse("+380978657654", "Portugal", "Lisbon", 12, 4))
	s.Require().NoError(err)

	s.Require().NoError(s.repo.DeleteByHouseAndFlat(ctx, 12, 4))
	_, err = s.repo.FindByHouseAndFlat(ctx, 12, 4)
	s.IsType(&apperror.NotFoundError{}, err)
}

func (s *HouseRepositorySuite) TestDuplicateHouseAndFlatIsConflict() {
	ctx := context.Background()
	_, err := s.repo.Create(ctx, newHouse("+380978657654", "Portugal", "Lisbon", 12, 4))
	s.Require().NoError(err)

	_, err = s.repo.Create(ctx, newHouse("+380977035432", "Portugal", "Porto", 12, 4))
	s.IsType(&apperror.ConflictError{}, err)
}

func (s *HouseRepositorySuite) TestUpdateChangingKeyDropsCachedOldKey() {
	ctx := context.Background()
	_, err := s.repo.Create(ctx, newHouse("+380978657654", "Portugal", "Lisbon", 12, 4))
	s.Require().NoError(err)

	// Aquece o cache da chave antiga.
	_, err = s.repo.FindByHouseAndFlat(ctx, 12, 4)
	s.Require().NoError(err)

	_, err = s.repo.UpdateByHouseAndFlat(ctx, 12, 4, newHouse("+380978657654", "Portugal", "Lisbon", 14, 2))
	s.Require().NoError(err)

	_, err = s.repo.FindByHouseAndFlat(ctx, 12, 4)
	s.IsType(&apperror.NotFoundError{}, err)

	moved, err := s.repo.FindByHouseAndFlat(ctx, 14, 2)
	s.Require().NoError(err)
	s.Equal(14, moved.HouseNumber)
	s.Equal(2, moved.FlatNumber)
}
