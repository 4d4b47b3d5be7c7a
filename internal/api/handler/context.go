package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/revesshop/storefront-api/internal/api/middleware"
	"github.com/revesshop/storefront-api/internal/core/domain"
)

// callerIdentity returns the identity injected by the Auth middleware.
// Its absence means the route was wired without Auth; fail closed with 401.
func callerIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c.Request().Context())
	if !ok || id.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, middleware.MsgMissingToken)
	}
	return id, nil
}
