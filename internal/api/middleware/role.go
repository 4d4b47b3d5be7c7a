package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminOnly lets through callers whose identity carries the admin role.
// It must be chained after Auth; without an identity the request is denied.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c.Request().Context())
			if !ok || !identity.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, MsgAccessDenied)
			}
			return next(c)
		}
	}
}
