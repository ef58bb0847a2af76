package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"poultryfarm/backend/internal/config"
	"poultryfarm/backend/internal/service/reporting"
	"poultryfarm/backend/internal/service/weather"
)

// Scheduler manages the periodic background jobs: refreshing the weather
// cache and exporting the daily ledger summary.
type Scheduler struct {
	cron         *cron.Cron
	weatherSvc   *weather.Service
	reportingSvc *reporting.Service
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. reportingSvc may be nil
// when the sheets export is not configured.
func NewScheduler(cfg config.Config, weatherSvc *weather.Service, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		weatherSvc:   weatherSvc,
		reportingSvc: reportingSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.Weather.RefreshCron, s.refreshWeather); err != nil {
		s.logger.Error("failed to schedule weather refresh", zap.Error(err))
	}

	if s.reportingSvc != nil {
		if _, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.exportDailyLedger); err != nil {
			s.logger.Error("failed to schedule ledger export", zap.Error(err))
		}
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) refreshWeather() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.weatherSvc.Refresh(ctx); err != nil {
		s.logger.Warn("weather refresh failed", zap.Error(err))
	}
}

func (s *Scheduler) exportDailyLedger() {
	s.logger.Info("exporting daily ledger")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.reportingSvc.ExportDailyLedger(ctx, time.Now()); err != nil {
		s.logger.Error("failed to export daily ledger", zap.Error(err))
	}
}
