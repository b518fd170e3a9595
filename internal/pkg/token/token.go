// Package token defines the bearer token format shared by the auth service
// (which mints tokens) and the auth middleware (which verifies them).
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/peopleops/hr-system/internal/core/domain"
)

// Claims is the signed payload carried by every bearer token. The permission
// record travels inside the token so per-request authorization needs no
// database read.
type Claims struct {
	Username    string             `json:"username"`
	Role        string             `json:"role"`
	EmployeeID  string             `json:"employee_id,omitempty"`
	Permissions domain.Permissions `json:"permissions"`
	jwt.RegisteredClaims
}

// Sign mints an HS256 token for the given account.
func Sign(secret string, user *domain.User, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		Username:    user.Username,
		Role:        string(user.Role),
		EmployeeID:  user.EmployeeID,
		Permissions: user.EffectivePermissions(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse verifies the signature and expiry and returns the claims. Only HS256
// is accepted.
func Parse(secret, raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if _, err := domain.ParseRole(claims.Role); err != nil {
		return nil, fmt.Errorf("token claims: %w", err)
	}
	return claims, nil
}
