package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/peopleops/hr-system/internal/api/metrics"
	"github.com/peopleops/hr-system/internal/core/domain"
	"github.com/peopleops/hr-system/internal/core/ports"
)

// SettingsService implements company settings. There is exactly one settings
// document; reading before the first save yields the zero value, not an error.
type SettingsService struct {
	settings ports.SettingsRepository
	logger   zerolog.Logger
}

func NewSettingsService(settings ports.SettingsRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{settings: settings, logger: logger}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.CompanySettings, error) {
	return s.settings.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, in *domain.CompanySettings) (*domain.CompanySettings, error) {
	if err := s.settings.Put(ctx, in); err != nil {
		return nil, err
	}
	metrics.RecordMutationsTotal.WithLabelValues("settings", "update").Inc()
	s.logger.Info().Str("company", in.CompanyName).Msg("company settings updated")
	return in, nil
}
