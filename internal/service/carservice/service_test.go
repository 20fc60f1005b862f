package carservice_test

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
	"userhub/internal/service/carservice"
)

// MockCarRepository é uma implementação mock da interface CarRepository
type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) FindAll(ctx context.Context) ([]domain.UserCar, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserCar), args.Error(1)
}

func (m *MockCarRepository) FindByVinCode(ctx context.Context, vinCode string) (domain.UserCar, error) {
	args := m.Called(ctx, vinCode)
	return args.Get(0).(domain.UserCar), args.Error(1)
}

func (m *MockCarRepository) FindByGraduationYear(ctx context.Context, year int) (domain.UserCar, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(domain.UserCar), args.Error(1)
}

func (m *MockCarRepository) FindByUserNameAndEmail(ctx context.Context, userName, email string) ([]domain.UserCar, error) {
	args := m.Called(ctx, userName, email)
	return args.Get(0).([]domain.UserCar), args.Error(1)
}

func (m *MockCarRepository) FindByBrandAndModel(ctx context.Context, brand, model string) ([]domain.UserCar, error) {
	args := m.Called(ctx, brand, model)
	return args.Get(0).([]domain.UserCar), args.Error(1)
}

func (m *MockCarRepository) Create(ctx context.Context, car domain.UserCar) (domain.UserCar, error) {
	args := m.Called(ctx, car)
	return args.Get(0).(domain.UserCar), args.Error(1)
}

func (m *MockCarRepository) UpdateByVinCode(ctx context.Context, vinCode string, car domain.UserCar) (domain.UserCar, error) {
	args := m.Called(ctx, vinCode, car)
	return args.Get(0).(domain.UserCar), args.Error(1)
}

func (m *MockCarRepository) DeleteByVinCode(ctx context.Context, vinCode string) error {
	args := m.Called(ctx, vinCode)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newService(repo *MockCarRepository) *carservice.Service {
	return carservice.NewService(repo, validator.New(), logger.New(io.Discard, "debug"), nil)
}

var corolla = domain.UserCar{
	ID: 1, UserName: "John", UserEmail: "john@gmail.com", BrandCar: "Toyota",
	GraduationYear: 2017, Model: "Corolla", CarVinCode: "VIN001",
}

func validPayload() dto.UserCar {
	return dto.UserCar{
		UserName:       strPtr("John"),
		UserEmail:      strPtr("john@gmail.com"),
		BrandCar:       strPtr("Toyota"),
		GraduationYear: intPtr(2017),
		Model:          strPtr("Corolla"),
		CarVinCode:     strPtr("VIN001"),
	}
}

func TestGetAll_EmptyIsNotFound(t *testing.T) {
	repo := new(MockCarRepository)
	repo.On("FindAll", mock.Anything).Return([]domain.UserCar{}, nil)

	_, err := newService(repo).GetAll(context.Background())

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestGetByVinCode(t *testing.T) {
	repo := new(MockCarRepository)
	repo.On("FindByVinCode", mock.Anything, "VIN001").Return(corolla, nil)

	car, err := newService(repo).GetByVinCode(context.Background(), "VIN001")

	require.NoError(t, err)
	assert.Equal(t, "Corolla", *car.Model)
}

func TestGetByVinCode_InvalidCharacters(t *testing.T) {
	repo := new(MockCarRepository)

	_, err := newService(repo).GetByVinCode(context.Background(), "VIN-001")

	assert.EqualError(t, err, "Invalid carVinCode characters: VIN-001")
	repo.AssertNotCalled(t, "FindByVinCode")
}

func TestGetByGraduationYear(t *testing.T) {
	repo := new(MockCarRepository)
	repo.On("FindByGraduationYear", mock.Anything, 2017).Return(corolla, nil)
	svc := newService(repo)

	car, err := svc.GetByGraduationYear(context.Background(), 2017)
	require.NoError(t, err)
	assert.Equal(t, 2017, *car.GraduationYear)

	_, err = svc.GetByGraduationYear(context.Background(), 17)
	assert.EqualError(t, err, "Invalid graduationYear characters: 17")
}

func TestGetByUserNameAndEmail(t *testing.T) {
	repo := new(MockCarRepository)
	repo.On("FindByUserNameAndEmail", mock.Anything, "John", "john@gmail.com").Return([]domain.UserCar{corolla}, nil)
	svc := newService(repo)

	cars, err := svc.GetByUserNameAndEmail(context.Background(), "John", "john@gmail.com")
	require.NoError(t, err)
	assert.Len(t, cars, 1)

	_, err = svc.GetByUserNameAndEmail(context.Background(), "John", "john!@gmail.com")
	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestGetByBrandAndModel_NoMatchIsNotFound(t *testing.T) {
	repo := new(MockCarRepository)
	repo.On("FindByBrandAndModel", mock.Anything, "Honda", "Civic").Return([]domain.UserCar{}, nil)

	_, err := newService(repo).GetByBrandAndModel(context.Background(), "Honda", "Civic")

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestCreate(t *testing.T) {
	repo := new(MockCarRepository)
	repo.On("Create", mock.Anything, validPayload().ToEntity()).Return(corolla, nil)

	car, err := newService(repo).Create(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, int64(1), *car.ID)
}

func TestCreate_InvalidBrand(t *testing.T) {
	repo := new(MockCarRepository)
	payload := validPayload()
	payload.BrandCar = strPtr("BMW3")

	_, err := newService(repo).Create(context.Background(), payload)

	assert.EqualError(t, err, "Invalid brandCar characters: BMW3")
}

func TestUpdateByVinCode_UsesPathVin(t *testing.T) {
	repo := new(MockCarRepository)
	payload := validPayload()
	payload.CarVinCode = nil

	expected := payload.ToEntity()
	expected.CarVinCode = "VIN001"
	repo.On("UpdateByVinCode", mock.Anything, "VIN001", expected).Return(corolla, nil)

	car, err := newService(repo).UpdateByVinCode(context.Background(), "VIN001", payload)

	require.NoError(t, err)
	assert.Equal(t, "VIN001", *car.CarVinCode)
	repo.AssertExpectations(t)
}

func TestUpdateByVinCode_NotFound(t *testing.T) {
	repo := new(MockCarRepository)
	repo.On("UpdateByVinCode", mock.Anything, "VIN404", mock.Anything).
		Return(domain.UserCar{}, apperror.NewNotFoundError("Car with vin code VIN404 not found"))

	_, err := newService(repo).UpdateByVinCode(context.Background(), "VIN404", validPayload())

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestDeleteByVinCode(t *testing.T) {
	repo := new(MockCarRepository)
	repo.On("DeleteByVinCode", mock.Anything, "VIN001").Return(nil)

	msg, err := newService(repo).DeleteByVinCode(context.Background(), "VIN001")

	require.NoError(t, err)
	assert.Equal(t, "Car with vin code VIN001 was successfully deleted", msg.Message)
}
