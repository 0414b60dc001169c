package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "intranet-portal/pkg/errors"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorResponse_RoleMismatchIsUnauthorized(t *testing.T) {
	// Несовпадение роли наружу не отличается от отсутствия сессии.
	ctx, rec := newTestContext(t)

	err := ErrorResponse(ctx, apperrors.ErrForbidden, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorResponse_SentinelMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"conflict", apperrors.ErrConflict, http.StatusConflict},
		{"locked", apperrors.ErrAccountLocked, http.StatusTooManyRequests},
		{"wrapped sentinel", fmt.Errorf("контекст: %w", apperrors.ErrNotFound), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, rec := newTestContext(t)
			require.NoError(t, ErrorResponse(ctx, tc.err, zap.NewNop()))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestErrorResponse_HttpErrorCarriesOwnCode(t *testing.T) {
	ctx, rec := newTestContext(t)

	err := ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат ID"), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Неверный формат ID")
}

func TestErrorResponse_UnknownErrorIsInternal(t *testing.T) {
	ctx, rec := newTestContext(t)

	err := ErrorResponse(ctx, fmt.Errorf("что-то пошло не так"), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "что-то пошло не так")
}
