package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "MissingRequiredFields",
			failure: failure.MissingRequiredFields,
			code:    http.StatusBadRequest,
			message: "Please fill in all required fields",
		},
		{
			name:    "InvalidDateRange",
			failure: failure.InvalidDateRange,
			code:    http.StatusBadRequest,
			message: "Check-out date must be after check-in date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.Equal(t, tt.message, tt.failure.Message)
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("quota exceeded")

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(cause), code: http.StatusBadRequest, message: "quota exceeded"},
		{name: "bad request from string", err: failure.BadRequestFromString("price must be numeric"), code: http.StatusBadRequest, message: "price must be numeric"},
		{name: "unauthorized", err: failure.Unauthorized("missing api key"), code: http.StatusUnauthorized, message: "missing api key"},
		{name: "internal", err: failure.InternalError(cause), code: http.StatusInternalServerError, message: "quota exceeded"},
		{name: "storage", err: failure.StorageFailure(cause), code: http.StatusInsufficientStorage, message: "quota exceeded"},
		{name: "not found", err: failure.NotFound("room not found"), code: http.StatusNotFound, message: "room not found"},
		{name: "conflict", err: failure.Conflict("guest already exists"), code: http.StatusConflict, message: "guest already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
	assert.NoError(t, failure.StorageFailure(nil))
}

func TestStorageFailureUnwrap(t *testing.T) {
	sentinel := errors.New("quota exceeded")
	err := fmt.Errorf("failed to save rooms: %w", failure.StorageFailure(fmt.Errorf("put rooms: %w", sentinel)))

	assert.ErrorIs(t, err, sentinel)
	assert.True(t, failure.IsStorage(err))
	assert.False(t, failure.IsNotFound(err))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, failure.GetCode(failure.NotFound("booking not found")))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(fmt.Errorf("wrapped: %w", failure.NotFound("booking not found"))))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.True(t, failure.IsNotFound(failure.NotFound("guest not found")))
	assert.False(t, failure.IsNotFound(nil))
}
