package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopleops/hr-system/internal/api/metrics"
	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/core/ports"
	"github.com/peopleops/hr-system/internal/pkg/token"
)

const minPasswordLen = 6

// AuthService implements login, identity lookup, and password self-service.
type AuthService struct {
	users       ports.UserRepository
	revocations ports.RevocationStore
	jwtSecret   string
	tokenTTL    time.Duration
	logger      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, revocations ports.RevocationStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:       users,
		revocations: revocations,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Login exchanges credentials for a bearer token. Unknown usernames and bad
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := token.Sign(s.jwtSecret, user, s.tokenTTL, time.Now().UTC())
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login")
	return signed, user, nil
}

// Me resolves the account behind an authenticated request.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// ChangePassword verifies the current password, stores the new hash, and
// moves the revocation watermark so every previously issued token (including
// the one used for this request) stops working.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return domain.ErrPasswordTooShort
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	if err := s.revocations.Revoke(ctx, userID, time.Now().UTC()); err != nil {
		// The password is already rotated; old tokens die at expiry anyway.
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to record token revocation")
	}

	s.logger.Info().Str("username", user.Username).Msg("password changed")
	return nil
}

// BootstrapAdmin provisions the initial admin account on an empty user
// collection. Subsequent calls are no-ops.
func (s *AuthService) BootstrapAdmin(ctx context.Context, username, password string) error {
	n, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if username == "" || len(password) < minPasswordLen {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Permissions:  domain.AllPermissions(),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Two instances racing the bootstrap is fine; one wins.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	s.logger.Info().Str("username", username).Msg("bootstrapped initial admin account")
	return nil
}
