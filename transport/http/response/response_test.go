package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "wrapped failure keeps its message",
			err:      fmt.Errorf("failed to update guest: %w", failure.MissingRequiredFields),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Please fill in all required fields"}`,
		},
		{
			name:     "not found",
			err:      failure.NotFound("Room not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Room not found"}`,
		},
		{
			name:     "storage failure",
			err:      failure.StorageFailure(errors.New("storage quota exceeded")),
			wantCode: http.StatusInsufficientStorage,
			wantBody: `{"error":"storage quota exceeded"}`,
		},
		{
			name:     "plain error hides details",
			err:      errors.New("dial tcp 10.0.0.1:5432"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSONAndMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusOK, map[string]int{"total": 2})
	assert.JSONEq(t, `{"data":{"total":2}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	response.WithMessage(rec, http.StatusCreated, "Guest added successfully!")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Guest added successfully!"}`, rec.Body.String())
}
