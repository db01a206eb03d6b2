package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinerate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRespondServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: rating out of range", usecase.ErrValidation), http.StatusBadRequest},
		{"already reviewed", usecase.ErrAlreadyReviewed, http.StatusConflict},
		{"email taken", usecase.ErrEmailTaken, http.StatusConflict},
		{"username taken", usecase.ErrUsernameTaken, http.StatusConflict},
		{"not owner", usecase.ErrNotOwner, http.StatusForbidden},
		{"user not found", usecase.ErrUserNotFound, http.StatusNotFound},
		{"invalid credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"upstream", fmt.Errorf("%w: tmdb status 503", usecase.ErrUpstream), http.StatusBadGateway},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			respondServiceError(rec, zap.NewNop(), tt.err, "test op")

			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":false`)
		})
	}
}

func TestRespondServiceError_InternalDetailsNotEchoed(t *testing.T) {
	rec := httptest.NewRecorder()

	respondServiceError(rec, zap.NewNop(), errors.New("pq: relation reviews does not exist"), "list reviews")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation reviews")
}
