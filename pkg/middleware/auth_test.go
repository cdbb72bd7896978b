package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/pkg/constants"
	"inventory-system/pkg/service"
	"inventory-system/pkg/utils"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func doRequest(t *testing.T, handler echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func TestAuth_NoHeader(t *testing.T) {
	jwtSvc := service.NewJWTService("secret", time.Minute, time.Hour, zap.NewNop())
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	rec := doRequest(t, mw.Auth(okHandler), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	jwtSvc := service.NewJWTService("secret", time.Minute, time.Hour, zap.NewNop())
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	rec := doRequest(t, mw.Auth(okHandler), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidAccessToken(t *testing.T) {
	jwtSvc := service.NewJWTService("secret", time.Minute, time.Hour, zap.NewNop())
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	access, _, err := jwtSvc.GenerateTokens(7, constants.RoleManager)
	require.NoError(t, err)

	var gotUserID uint64
	var gotRole string
	handler := mw.Auth(func(c echo.Context) error {
		gotUserID, _ = utils.GetUserIDFromCtx(c.Request().Context())
		gotRole = utils.GetUserRoleFromCtx(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})

	rec := doRequest(t, handler, "Bearer "+access)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(7), gotUserID)
	assert.Equal(t, constants.RoleManager, gotRole)
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	jwtSvc := service.NewJWTService("secret", time.Minute, time.Hour, zap.NewNop())
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	_, refresh, err := jwtSvc.GenerateTokens(7, constants.RoleManager)
	require.NoError(t, err)

	rec := doRequest(t, mw.Auth(okHandler), "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	jwtSvc := service.NewJWTService("secret", time.Minute, time.Hour, zap.NewNop())
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	adminToken, _, err := jwtSvc.GenerateTokens(1, constants.RoleAdmin)
	require.NoError(t, err)
	managerToken, _, err := jwtSvc.GenerateTokens(2, constants.RoleManager)
	require.NoError(t, err)

	handler := mw.Auth(mw.RequireAdmin(okHandler))

	rec := doRequest(t, handler, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, "Bearer "+managerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
