package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/hr-system/internal/api/metrics"
	"github.com/peopleops/hr-system/internal/core/ports"
	"github.com/peopleops/hr-system/internal/pkg/token"
)

// ContextKeyClaims is the echo context key under which Auth stores the
// verified token claims.
const ContextKeyClaims = "claims"

// Auth validates the bearer token, checks it against the revocation
// watermark, and injects the verified claims into the request context.
// revocations may be nil, in which case only signature and expiry gate access.
func Auth(jwtSecret string, revocations ports.RevocationStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := token.Parse(jwtSecret, parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if revocations != nil && claims.IssuedAt != nil {
				watermark, err := revocations.RevokedAt(c.Request().Context(), claims.Subject)
				if err != nil {
					// A revocation-store outage must not lock everyone out;
					// the token still carries a valid signature and expiry.
					c.Logger().Warnf("revocation lookup failed: %v", err)
				} else if !watermark.IsZero() && claims.IssuedAt.Time.Before(watermark) {
					metrics.TokenRejectionsTotal.WithLabelValues("revoked").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set(ContextKeyClaims, claims)
			return next(c)
		}
	}
}
