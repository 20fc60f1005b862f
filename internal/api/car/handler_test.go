package car_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"userhub/internal/api/car"
	"userhub/internal/dto"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/logger"
)

// MockCarService é uma implementação mock da interface CarService
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) GetAll(ctx context.Context) ([]dto.UserCar, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.UserCar), args.Error(1)
}

func (m *MockCarService) GetByVinCode(ctx context.Context, vinCode string) (dto.UserCar, error) {
	args := m.Called(ctx, vinCode)
	return args.Get(0).(dto.UserCar), args.Error(1)
}

func (m *MockCarService) GetByGraduationYear(ctx context.Context, year int) (dto.UserCar, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(dto.UserCar), args.Error(1)
}

func (m *MockCarService) GetByUserNameAndEmail(ctx context.Context, userName, email string) ([]dto.UserCar, error) {
	args := m.Called(ctx, userName, email)
	return args.Get(0).([]dto.UserCar), args.Error(1)
}

func (m *MockCarService) GetByBrandAndModel(ctx context.Context, brand, model string) ([]dto.UserCar, error) {
	args := m.Called(ctx, brand, model)
	return args.Get(0).([]dto.UserCar), args.Error(1)
}

func (m *MockCarService) Create(ctx context.Context, payload dto.UserCar) (dto.UserCar, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(dto.UserCar), args.Error(1)
}

func (m *MockCarService) UpdateByVinCode(ctx context.Context, vinCode string, payload dto.UserCar) (dto.UserCar, error) {
	args := m.Called(ctx, vinCode, payload)
	return args.Get(0).(dto.UserCar), args.Error(1)
}

func (m *MockCarService) DeleteByVinCode(ctx context.Context, vinCode string) (dto.Message, error) {
	args := m.Called(ctx, vinCode)
	return args.Get(0).(dto.Message), args.Error(1)
}

func newRouter(svc *MockCarService) http.Handler {
	h := car.NewHandler(svc, logger.New(io.Discard, "debug"))
	r := chi.NewRouter()
	r.Route("/users/car", func(r chi.Router) {
		r.Get("/", h.GetAllHandler)
		r.Post("/", h.CreateHandler)
		r.Get("/graduationYear/{year}", h.GetByGraduationYearHandler)
		r.Get("/userName/{name}/email/{email}", h.GetByUserNameAndEmailHandler)
		r.Get("/brancCar/{brand}/model/{model}", h.GetByBrandAndModelHandler)
		r.Put("/update/{vinCode}", h.UpdateByVinCodeHandler)
		r.Delete("/delete/{vinCode}", h.DeleteByVinCodeHandler)
		r.Get("/{vinCode}", h.GetByVinCodeHandler)
	})
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestGetByVinCodeHandler(t *testing.T) {
	svc := new(MockCarService)
	svc.On("GetByVinCode", mock.Anything, "JTDBR32E720123456").Return(dto.UserCar{}, nil)

	rec := do(newRouter(svc), http.MethodGet, "/users/car/JTDBR32E720123456", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetByGraduationYearHandler_NonNumeric(t *testing.T) {
	svc := new(MockCarService)

	rec := do(newRouter(svc), http.MethodGet, "/users/car/graduationYear/20x7", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetByGraduationYear")
}

func TestGetByUserNameAndEmailHandler(t *testing.T) {
	svc := new(MockCarService)
	svc.On("GetByUserNameAndEmail", mock.Anything, "John", "john@gmail.com").Return([]dto.UserCar{{}}, nil)

	rec := do(newRouter(svc), http.MethodGet, "/users/car/userName/John/email/john@gmail.com", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetByBrandAndModelHandler(t *testing.T) {
	svc := new(MockCarService)
	svc.On("GetByBrandAndModel", mock.Anything, "Toyota", "Corolla").
		Return([]dto.UserCar(nil), apperror.NewNotFoundError("Cars of brand Toyota and model Corolla not found"))

	rec := do(newRouter(svc), http.MethodGet, "/users/car/brancCar/Toyota/model/Corolla", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateByVinCodeHandler_ValidationIs400(t *testing.T) {
	svc := new(MockCarService)
	svc.On("UpdateByVinCode", mock.Anything, "VIN001", mock.Anything).
		Return(dto.UserCar{}, apperror.NewValidationError("brandCar is required"))

	rec := do(newRouter(svc), http.MethodPut, "/users/car/update/VIN001", `{"model":"Corolla"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "brandCar is required")
}

func TestDeleteByVinCodeHandler(t *testing.T) {
	svc := new(MockCarService)
	svc.On("DeleteByVinCode", mock.Anything, "VIN001").
		Return(dto.Message{Message: "Car with vin code VIN001 was successfully deleted"}, nil)

	rec := do(newRouter(svc), http.MethodDelete, "/users/car/delete/VIN001", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Car with vin code VIN001 was successfully deleted"}`, rec.Body.String())
}
