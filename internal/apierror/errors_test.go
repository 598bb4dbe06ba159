package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        *APIError
		wantKind   Kind
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        NewErrValidation("Missing email"),
			wantKind:   KindValidation,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing email",
		},
		{
			name:       "account exists",
			err:        NewErrAccountExists(),
			wantKind:   KindConflict,
			wantStatus: http.StatusConflict,
			wantMsg:    "User already registered.",
		},
		{
			name:       "invalid credentials",
			err:        NewErrInvalidCredentials(),
			wantKind:   KindAuthentication,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid credentials",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantMsg, tt.err.Message)
			assert.Contains(t, tt.err.Error(), tt.wantMsg)
		})
	}
}

func TestAs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("register: %w", NewErrAccountExists())

	apiErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	_, ok = As(errors.New("boom"))
	assert.False(t, ok)
}

func TestIsKind(t *testing.T) {
	t.Parallel()

	assert.True(t, IsKind(NewErrValidation("x"), KindValidation))
	assert.False(t, IsKind(NewErrValidation("x"), KindConflict))
	assert.False(t, IsKind(errors.New("boom"), KindValidation))
	assert.False(t, IsKind(nil, KindValidation))
}
