package houseservice_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"userhub/internal/domain"
	"userhub/internal/dto"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/logger"
	"userhub/internal/pkg/validator"
	"userhub/internal/service/houseservice"
)

// MockHouseRepository é uma implementação mock da interface HouseRepository
type MockHouseRepository struct {
	mock.Mock
}

func (m *MockHouseRepository) FindAll(ctx context.Context) ([]domain.UserHouse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserHouse), args.Error(1)
}

func (m *MockHouseRepository) FindByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int) (domain.UserHouse, error) {
	args := m.Called(ctx, houseNumber, flatNumber)
	return args.Get(0).(domain.UserHouse), args.Error(1)
}

func (m *MockHouseRepository) FindByTown(ctx context.Context, town string) ([]domain.UserHouse, error) {
	args := m.Called(ctx, town)
	return args.Get(0).([]domain.UserHouse), args.Error(1)
}

func (m *MockHouseRepository) FindByCountry(ctx context.Context, country string) ([]domain.UserHouse, error) {
	args := m.Called(ctx, country)
	return args.Get(0).([]domain.UserHouse), args.Error(1)
}

func (m *MockHouseRepository) Create(ctx context.Context, house domain.UserHouse) (domain.UserHouse, error) {
	args := m.Called(ctx, house)
	return args.Get(0).(domain.UserHouse), args.Error(1)
}

func (m *MockHouseRepository) UpdateByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int, house domain.UserHouse) (domain.UserHouse, error) {
	args := m.Called(ctx, houseNumber, flatNumber, house)
	return args.Get(0).(domain.UserHouse), args.Error(1)
}

func (m *MockHouseRepository) DeleteByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int) error {
	args := m.Called(ctx, houseNumber, flatNumber)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newService(repo *MockHouseRepository) *houseservice.Service {
	return houseservice.NewService(repo, validator.New(), logger.New(io.Discard, "debug"), nil)
}

var lisbon = domain.UserHouse{
	ID: 1, UserName: "John_1", UserPhone: "+380978657654", Country: "Portugal",
	Town: "Lisbon", Address: "Augusta", HouseNumber: 12, FlatNumber: 4,
}

func validPayload() dto.UserHouse {
	return dto.UserHouse{
		UserName:    strPtr("John_1"),
		UserPhone:   strPtr("+380978657654"),
		Country:     strPtr("Portugal"),
		Town:        strPtr("Lisbon"),
		Address:     strPtr("Augusta"),
		HouseNumber: intPtr(12),
		FlatNumber:  intPtr(4),
	}
}

func TestGetAll_EmptyIsNotFound(t *testing.T) {
	repo := new(MockHouseRepository)
	repo.On("FindAll", mock.Anything).Return([]domain.UserHouse{}, nil)

	_, err := newService(repo).GetAll(context.Background())

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestGetByHouseAndFlat(t *testing.T) {
	repo := new(MockHouseRepository)
	repo.On("FindByHouseAndFlat", mock.Anything, 12, 4).Return(lisbon, nil)
	svc := newService(repo)

	house, err := svc.GetByHouseAndFlat(context.Background(), 12, 4)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", *house.Town)

	_, err = svc.GetByHouseAndFlat(context.Background(), -1, 4)
	assert.EqualError(t, err, "Invalid houseNumber value: -1")
}

func TestOutOfRangeNumbersAreRejectedBeforeStore(t *testing.T) {
	repo := new(MockHouseRepository)
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.GetByHouseAndFlat(ctx, 3000000000, 1)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.EqualError(t, err, "Invalid houseNumber value: 3000000000")

	_, err = svc.UpdateByHouseAndFlat(ctx, 12, 2147483648, validPayload())
	assert.EqualError(t, err, "Invalid flatNumber value: 2147483648")

	_, err = svc.DeleteByHouseAndFlat(ctx, 3000000000, 1)
	assert.IsType(t, &apperror.ValidationError{}, err)

	payload := validPayload()
	payload.HouseNumber = intPtr(3000000000)
	_, err = svc.Create(ctx, payload)
	assert.EqualError(t, err, "Invalid houseNumber value: 3000000000")

	repo.AssertNotCalled(t, "FindByHouseAndFlat")
	repo.AssertNotCalled(t, "UpdateByHouseAndFlat")
	repo.AssertNotCalled(t, "DeleteByHouseAndFlat")
	repo.AssertNotCalled(t, "Create")
}

func TestGetByCountry_Supported(t *testing.T) {
	repo := new(MockHouseRepository)
	repo.On("FindByCountry", mock.Anything, "PORTUGAL").Return([]domain.UserHouse{lisbon}, nil)

	houses, err := newService(repo).GetByCountry(context.Background(), "PORTUGAL")

	require.NoError(t, err)
	assert.Len(t, houses, 1)
}

func TestGetByCountry_Unsupported(t *testing.T) {
	repo := new(MockHouseRepository)

	_, err := newService(repo).GetByCountry(context.Background(), "USA")

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.EqualError(t, err, "Unsupported country requested: USA")
	repo.AssertNotCalled(t, "FindByCountry")
}

func TestGetByTown_NoMatchIsNotFound(t *testing.T) {
	repo := new(MockHouseRepository)
	repo.On("FindByTown", mock.Anything, "Porto").Return([]domain.UserHouse{}, nil)

	_, err := newService(repo).GetByTown(context.Background(), "Porto")

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestCreate_RejectsUnsupportedCountry(t *testing.T) {
	repo := new(MockHouseRepository)
	payload := validPayload()
	payload.Country = strPtr("USA")

	_, err := newService(repo).Create(context.Background(), payload)

	assert.EqualError(t, err, "Unsupported country requested: USA")
	repo.AssertNotCalled(t, "Create")
}

func TestCreate(t *testing.T) {
	repo := new(MockHouseRepository)
	repo.On("Create", mock.Anything, validPayload().ToEntity()).Return(lisbon, nil)

	house, err := newService(repo).Create(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, int64(1), *house.ID)
}

func TestUpdateByHouseAndFlat_PassesTown(t *testing.T) {
	repo := new(MockHouseRepository)
	payload := validPayload()
	payload.Town = strPtr("Porto")
	updated := lisbon
	updated.Town = "Porto"
	repo.On("UpdateByHouseAndFlat", mock.Anything, 12, 4, mock.MatchedBy(func(h domain.UserHouse) bool {
		return h.Town == "Porto" && h.Address == "Augusta"
	})).Return(updated, nil)

	house, err := newService(repo).UpdateByHouseAndFlat(context.Background(), 12, 4, payload)

	require.NoError(t, err)
	assert.Equal(t, "Porto", *house.Town)
	repo.AssertExpectations(t)
}

func TestDeleteByHouseAndFlat(t *testing.T) {
	repo := new(MockHouseRepository)
	repo.On("DeleteByHouseAndFlat", mock.Anything, 12, 4).Return(nil)

	msg, err := newService(repo).DeleteByHouseAndFlat(context.Background(), 12, 4)

	require.NoError(t, err)
	assert.Equal(t, "House with house number 12 and flat number 4 was successfully deleted", msg.Message)
}
