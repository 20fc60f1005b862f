package respond_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userhub/internal/api/respond"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/logger"
)

func TestJSON_Success(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()

	respond.JSON(rec, httptest.NewRequest(http.MethodGet, "/users", nil), logger.New(&logs, "debug"),
		map[string]int{"count": 2}, nil, http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":2}`, rec.Body.String())
}

func TestJSON_ServerErrorIsLoggedAndMasked(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()

	respond.JSON(rec, httptest.NewRequest(http.MethodGet, "/users", nil), logger.New(&logs, "error"),
		nil, errors.New("driver: bad connection"), http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":500,"category":"UNKNOWN_ERROR","message":"Unexpected error."}`, rec.Body.String())
	assert.Contains(t, logs.String(), "driver: bad connection")
}

func TestJSON_ClientErrorNotLoggedAtErrorLevel(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()

	respond.JSON(rec, httptest.NewRequest(http.MethodGet, "/users/1", nil), logger.New(&logs, "error"),
		nil, apperror.NewNotFoundError("User with id 1 not found"), http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, logs.String())
}

func TestDecodeBody_Malformed(t *testing.T) {
	var dest map[string]interface{}
	err := respond.DecodeBody(httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{")), &dest)

	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/users?id=42", nil)
	v, err := respond.IntQuery(req, "id")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = respond.IntQuery(httptest.NewRequest(http.MethodDelete, "/users", nil), "id")
	assert.EqualError(t, err, "id is required")
}

func TestIntParam(t *testing.T) {
	var got int
	var gotErr error
	r := chi.NewRouter()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		got, gotErr = respond.IntParam(req, "id")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/9", nil))
	require.NoError(t, gotErr)
	assert.Equal(t, 9, got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/nine", nil))
	assert.EqualError(t, gotErr, "Invalid id value: nine")
}
