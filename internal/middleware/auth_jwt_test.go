package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"msistore/internal/config"
	"msistore/internal/domain/model"
	"msistore/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID int64, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func protectedEcho(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	g := e.Group("/p")
	g.Use(mw...)
	g.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func doRequest(e *echo.Echo, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthJWT_NoHeader(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	e := protectedEcho(middleware.AuthJWT(cfg))

	rec := doRequest(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MalformedHeader(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	e := protectedEcho(middleware.AuthJWT(cfg))

	rec := doRequest(e, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// 署名が別シークレットなら拒否
func TestAuthJWT_TamperedSignature(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	e := protectedEcho(middleware.AuthJWT(cfg))

	token := signToken(t, "other-secret", 1, model.RoleNameUser)
	rec := doRequest(e, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ValidToken(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	e := protectedEcho(middleware.AuthJWT(cfg))

	token := signToken(t, testSecret, 1, model.RoleNameUser)
	rec := doRequest(e, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// USERは403、ADMINだけ通す
func TestAdminRoleGuard(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	e := protectedEcho(middleware.AuthJWT(cfg), middleware.AdminRoleGuard())

	userToken := signToken(t, testSecret, 1, model.RoleNameUser)
	rec := doRequest(e, "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := signToken(t, testSecret, 2, model.RoleNameAdmin)
	rec = doRequest(e, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}
