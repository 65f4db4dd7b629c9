package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/labstack/echo/v4"
)

const callerContextKey = "caller"

// Identity resolves the opaque caller identity from a bearer token.
// Authentication happens upstream; this service only trusts the signed
// claims (sub, role). Requests without a token stay anonymous.
func Identity(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "malformed authorization header"})
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid claims"})
			}
			userID, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)

			c.Set(callerContextKey, domain.Caller{UserID: userID, Role: domain.Role(role)})
			return next(c)
		}
	}
}

// RequireIdentity guards mutating routes.
func RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CallerFrom(c); !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		}
		return next(c)
	}
}

func CallerFrom(c echo.Context) (domain.Caller, bool) {
	caller, ok := c.Get(callerContextKey).(domain.Caller)
	return caller, ok
}
