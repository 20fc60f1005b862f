package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	apperror "userhub/internal/errors"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCategory string
		wantMessage  string
	}{
		{"validation", apperror.NewValidationError("Invalid name characters: John@"), http.StatusBadRequest, "VALIDATION_ERROR", "Invalid name characters: John@"},
		{"not found", apperror.NewNotFoundError("Users not found"), http.StatusNotFound, "NOT_FOUND", "Users not found"},
		{"conflict", apperror.NewConflictError("duplicate"), http.StatusConflict, "CONFLICT", "duplicate"},
		{"internal", apperror.NewInternalError("Failed", errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR", "Failed: boom"},
		{"untyped", errors.New("raw"), http.StatusInternalServerError, "UNKNOWN_ERROR", "Unexpected error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, category, message := apperror.MapToHTTPStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCategory, category)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestMapToHTTPStatus_WrappedAppError(t *testing.T) {
	err := fmt.Errorf("service layer: %w", apperror.NewNotFoundError("Car not found"))

	status, category, _ := apperror.MapToHTTPStatus(err)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", category)
}

func TestNewDBError_UniqueViolationBecomesConflict(t *testing.T) {
	driverErr := &pq.Error{Code: "23505", Detail: "Key (email)=(john@gmail.com) already exists."}

	err := apperror.NewDBError("Failed to create user", driverErr)

	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.ErrorIs(t, err, driverErr)
}

func TestNewDBError_OtherFailuresAreInternal(t *testing.T) {
	err := apperror.NewDBError("Failed to fetch users", errors.New("connection refused"))

	assert.IsType(t, &apperror.InternalError{}, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPropagate(t *testing.T) {
	notFound := apperror.NewNotFoundError("Passport with number 123456789 not found")

	assert.Same(t, notFound, apperror.Propagate("Failed", notFound))
	assert.IsType(t, &apperror.InternalError{}, apperror.Propagate("Failed", errors.New("boom")))
	assert.NoError(t, apperror.Propagate("Failed", nil))
}
