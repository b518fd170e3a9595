package ports

import (
	"context"
	"time"

	"github.com/peopleops/hr-system/internal/core/domain"
)

// AuthService implements credential exchange and account self-service.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Me resolves the account behind an authenticated request.
	Me(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	// BootstrapAdmin provisions the initial admin account when the user
	// collection is empty. Called once at startup; a no-op otherwise.
	BootstrapAdmin(ctx context.Context, username, password string) error
}

// RevocationStore tracks per-account credential revocation watermarks.
// Tokens issued before the watermark are rejected by the auth middleware.
type RevocationStore interface {
	Revoke(ctx context.Context, userID string, at time.Time) error
	// RevokedAt returns the watermark for the account, or the zero time when
	// no revocation is recorded.
	RevokedAt(ctx context.Context, userID string) (time.Time, error)
}
