package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/revesshop/storefront-api/internal/core/ports"
)

const (
	MsgMissingToken = "token not provided"
	MsgInvalidToken = "invalid or expired token"
	MsgAccessDenied = "access denied: admin role required"
)

// Auth verifies the bearer token and stores the decoded identity in the
// request context for downstream handlers.
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, MsgMissingToken)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, MsgMissingToken)
			}

			identity, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, MsgInvalidToken)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(WithIdentity(req.Context(), *identity)))
			return next(c)
		}
	}
}
