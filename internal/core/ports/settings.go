package ports

import (
	"context"

	"github.com/peopleops/hr-system/internal/core/domain"
)

// SettingsRepository persists the singleton company settings document.
type SettingsRepository interface {
	// Get returns the stored settings, or the zero value when none exist.
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Put(ctx context.Context, s *domain.CompanySettings) error
}

// SettingsService defines company settings operations.
type SettingsService interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Update(ctx context.Context, s *domain.CompanySettings) (*domain.CompanySettings, error)
}
