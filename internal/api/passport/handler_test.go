package passport_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"userhub/internal/api/passport"
	"userhub/internal/domain"
	"userhub/internal/dto"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/logger"
)

// MockPassportService é uma implementação mock da interface PassportService
type MockPassportService struct {
	mock.Mock
}

func (m *MockPassportService) GetAll(ctx context.Context) ([]dto.UserPassport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.UserPassport), args.Error(1)
}

func (m *MockPassportService) GetByNumber(ctx context.Context, number int) (dto.UserPassport, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(dto.UserPassport), args.Error(1)
}

func (m *MockPassportService) GetByNationality(ctx context.Context, nationality string) ([]dto.UserPassport, error) {
	args := m.Called(ctx, nationality)
	return args.Get(0).([]dto.UserPassport), args.Error(1)
}

func (m *MockPassportService) GetValid(ctx context.Context) ([]dto.UserPassport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.UserPassport), args.Error(1)
}

func (m *MockPassportService) GetExpired(ctx context.Context) ([]dto.UserPassport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.UserPassport), args.Error(1)
}

func (m *MockPassportService) Create(ctx context.Context, payload dto.UserPassport) (dto.UserPassport, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(dto.UserPassport), args.Error(1)
}

func (m *MockPassportService) UpdateByNumber(ctx context.Context, number int, payload dto.UserPassport) (dto.UserPassport, error) {
	args := m.Called(ctx, number, payload)
	return args.Get(0).(dto.UserPassport), args.Error(1)
}

func (m *MockPassportService) DeleteByNumber(ctx context.Context, number int) (dto.Message, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(dto.Message), args.Error(1)
}

func newRouter(svc *MockPassportService) http.Handler {
	h := passport.NewHandler(svc, logger.New(io.Discard, "debug"))
	r := chi.NewRouter()
	r.Route("/users/passport", func(r chi.Router) {
		r.Get("/", h.GetAllHandler)
		r.Post("/", h.CreateHandler)
		r.Delete("/", h.DeleteByNumberHandler)
		r.Get("/nationality", h.GetByNationalityHandler)
		r.Get("/valid", h.GetValidHandler)
		r.Get("/expired", h.GetExpiredHandler)
		r.Get("/{passportNumber}", h.GetByNumberHandler)
		r.Put("/{passportNumber}", h.UpdateByNumberHandler)
	})
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestGetByNumberHandler(t *testing.T) {
	svc := new(MockPassportService)
	number := 123456789
	svc.On("GetByNumber", mock.Anything, number).Return(dto.UserPassport{PassportNumber: &number}, nil)

	rec := do(newRouter(svc), http.MethodGet, "/users/passport/123456789", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var got dto.UserPassport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, number, *got.PassportNumber)
	assert.Nil(t, got.DateOfExpire)
}

func TestGetByNationalityHandler_PassesQuery(t *testing.T) {
	svc := new(MockPassportService)
	svc.On("GetByNationality", mock.Anything, "American").Return([]dto.UserPassport{{}}, nil)

	rec := do(newRouter(svc), http.MethodGet, "/users/passport/nationality?nationality=American", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetValidHandler_RoutesBeforeNumber(t *testing.T) {
	svc := new(MockPassportService)
	svc.On("GetValid", mock.Anything).Return([]dto.UserPassport{{}}, nil)
	svc.On("GetExpired", mock.Anything).Return([]dto.UserPassport(nil), apperror.NewNotFoundError("Expired passports not found"))
	r := newRouter(svc)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/users/passport/valid", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/users/passport/expired", "").Code)
	svc.AssertNotCalled(t, "GetByNumber")
}

func TestGetValidHandler_UnparseableDateIs500(t *testing.T) {
	svc := new(MockPassportService)
	svc.On("GetValid", mock.Anything).Return([]dto.UserPassport(nil), apperror.NewInternalError("Failed to parse expire date of passport 1", assert.AnError))

	rec := do(newRouter(svc), http.MethodGet, "/users/passport/valid", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "INTERNAL_ERROR", body.Category)
}

func TestUpdateByNumberHandler(t *testing.T) {
	svc := new(MockPassportService)
	svc.On("UpdateByNumber", mock.Anything, 123456789, mock.MatchedBy(func(p dto.UserPassport) bool {
		return p.Sex != nil && *p.Sex == "Female" && p.DateOfExpire == nil
	})).Return(dto.UserPassport{}, nil)

	rec := do(newRouter(svc), http.MethodPut, "/users/passport/123456789", `{"sex":"Female"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestDeleteByNumberHandler_InvalidQuery(t *testing.T) {
	svc := new(MockPassportService)

	rec := do(newRouter(svc), http.MethodDelete, "/users/passport?passportNumber=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "DeleteByNumber")
}

func TestDeleteByNumberHandler(t *testing.T) {
	svc := new(MockPassportService)
	svc.On("DeleteByNumber", mock.Anything, 123456789).
		Return(dto.Message{Message: "Passport with number 123456789 was successfully deleted"}, nil)

	rec := do(newRouter(svc), http.MethodDelete, "/users/passport?passportNumber=123456789", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "successfully deleted")
}
