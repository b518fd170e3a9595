package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/pkg/token"
)

// claimsFromContext reads the claims stored by Auth. Absent claims mean the
// route was wired without the Auth middleware.
func claimsFromContext(c echo.Context) (*token.Claims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*token.Claims)
	return claims, ok && claims != nil
}

// RequireRole allows the request through only when the authenticated role is
// one of the given roles.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := claimsFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[domain.Role(claims.Role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// Permission selects one flag out of the fixed-shape permission record.
type Permission func(domain.Permissions) bool

var (
	PermAttendanceView Permission = func(p domain.Permissions) bool { return p.AttendanceView }
	PermLeaveApply     Permission = func(p domain.Permissions) bool { return p.LeaveApply }
	PermProfileView    Permission = func(p domain.Permissions) bool { return p.ProfileView }
)

// RequirePermission allows the request through only when the session holds
// the given permission flag. Admin tokens carry every flag.
func RequirePermission(perm Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := claimsFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !perm(claims.Permissions) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
