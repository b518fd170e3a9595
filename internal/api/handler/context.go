package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/hr-system/internal/api/middleware"
	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/pkg/token"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - claims must be present (presence proves the middleware ran).
//   - employee role requires a non-empty employee_id; a token without one
//     cannot address any portal data and is rejected with 401.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims, ok := c.Get(middleware.ContextKeyClaims).(*token.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	if domain.Role(claims.Role) == domain.RoleEmployee && claims.EmployeeID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "token missing employee identity")
	}

	return claims, nil
}
