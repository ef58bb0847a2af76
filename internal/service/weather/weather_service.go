package weather

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
	"poultryfarm/backend/pkg/clients/openmeteo"
)

// Service keeps the latest weather reading for the farm site. The
// scheduler refreshes it periodically; a cold cache triggers an
// on-demand fetch.
type Service struct {
	client openmeteo.Client
	logger *zap.Logger
	now    func() time.Time

	mu     sync.RWMutex
	latest *models.WeatherReading
}

// NewService constructs a weather service.
func NewService(client openmeteo.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger, now: time.Now}
}

// Refresh fetches current conditions and updates the cache.
func (s *Service) Refresh(ctx context.Context) error {
	conditions, err := s.client.CurrentConditions(ctx)
	if err != nil {
		return err
	}

	reading := &models.WeatherReading{
		Temperature: conditions.Temperature,
		WeatherCode: conditions.WeatherCode,
		Unit:        conditions.Unit,
		FetchedAt:   s.now(),
	}

	s.mu.Lock()
	s.latest = reading
	s.mu.Unlock()

	s.logger.Debug("weather cache refreshed", zap.Float64("temperature", conditions.Temperature))
	return nil
}

// Current returns the cached reading, fetching once if the cache is cold.
func (s *Service) Current(ctx context.Context) (*models.WeatherReading, error) {
	s.mu.RLock()
	latest := s.latest
	s.mu.RUnlock()

	if latest != nil {
		return latest, nil
	}

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, nil
}
