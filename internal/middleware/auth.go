package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"biomarket-api/internal/auth"
)

const claimsKey = "claims"

// JWTAuth extracts the bearer token, verifies it and stashes the claims in
// the request context. Missing, malformed, invalid and expired tokens are
// all rejected with 401.
func JWTAuth(jwt *auth.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			claims, err := jwt.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// Claims returns the verified token claims stored by JWTAuth.
func Claims(c echo.Context) (*auth.Claims, bool) {
	claims, okClaims := c.Get(claimsKey).(*auth.Claims)
	return claims, okClaims
}

// UserID is a convenience accessor for the authenticated user id.
func UserID(c echo.Context) (uint, error) {
	claims, okClaims := Claims(c)
	if !okClaims {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
	}
	return claims.UserID, nil
}

// RequireRole gates a route group to one role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, okClaims := Claims(c)
			if !okClaims {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
