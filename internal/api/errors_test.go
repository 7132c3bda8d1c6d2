package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calebmaier/taskline-api/internal/api"
	"github.com/calebmaier/taskline-api/internal/domain"
	"github.com/calebmaier/taskline-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error maps to 400",
			err:        domain.ErrValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid id maps to 400",
			err:        domain.ErrInvalidID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped invalid id maps to 400",
			err:        domain.NewValidationError("id", "id must be an integer", domain.ErrInvalidID),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing title maps to 400",
			err:        domain.ErrTitleRequired,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "task not found maps to 404",
			err:        store.ErrTaskNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrapped not found maps to 404",
			err:        fmt.Errorf("updating: %w", store.ErrTaskNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "duplicate task maps to 409",
			err:        store.ErrTaskExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantStatus, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invalid id",
			err:  domain.NewValidationError("id", "id must be an integer", domain.ErrInvalidID),
			want: "invalid id",
		},
		{
			name: "title required",
			err:  domain.ErrTitleRequired,
			want: "title required",
		},
		{
			name: "not found",
			err:  fmt.Errorf("deleting: %w", store.ErrTaskNotFound),
			want: "task not found",
		},
		{
			name: "duplicate",
			err:  store.ErrTaskExists,
			want: "task already exists",
		},
		{
			name: "internal errors get a generic message",
			err:  errors.New("pq: connection reset by peer"),
			want: "An unexpected error occurred",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, api.GetSafeErrorMessage(tc.err))
		})
	}
}
