package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, sub, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runIdentity(t *testing.T, authHeader string) (*httptest.ResponseRecorder, domain.Caller, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		caller domain.Caller
		ok     bool
	)
	handler := Identity(testSecret)(func(c echo.Context) error {
		caller, ok = CallerFrom(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, caller, ok
}

func TestIdentity_ResolvesCaller(t *testing.T) {
	token := signToken(t, testSecret, "user-1", "CUSTOMER")

	rec, caller, ok := runIdentity(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, "user-1", caller.UserID)
	assert.Equal(t, domain.RoleCustomer, caller.Role)
	assert.True(t, caller.IsCustomer())
}

func TestIdentity_NoHeaderStaysAnonymous(t *testing.T) {
	rec, _, ok := runIdentity(t, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ok)
}

func TestIdentity_RejectsBadTokens(t *testing.T) {
	rec, _, _ := runIdentity(t, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	wrongKey := signToken(t, "other-secret", "user-1", "CUSTOMER")
	rec, _, _ = runIdentity(t, "Bearer "+wrongKey)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _, _ = runIdentity(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireIdentity(t *testing.T) {
	e := echo.New()
	handler := RequireIdentity(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set("caller", domain.Caller{UserID: "user-1", Role: domain.RoleMerchant})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
