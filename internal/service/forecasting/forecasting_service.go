package forecasting

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
	"poultryfarm/backend/internal/forecast"
)

const dateLayout = "2006-01-02"

// defaultChickWeightGrams is assumed when a batch was created without a
// recorded day-old chick weight.
const defaultChickWeightGrams = 40.0

// BatchRepository defines the batch store operations the forecasting
// service needs.
type BatchRepository interface {
	GetBatch(ctx context.Context, id string) (*models.Batch, error)
	ListBatches(ctx context.Context) ([]models.Batch, error)
	SaveFeedForecast(ctx context.Context, batchID string, entries []models.FeedForecastEntry) error
	SaveVitaminForecast(ctx context.Context, batchID string, events []models.DepletionEvent) error
}

// Service exposes the forecasting operations: feed/weight projection,
// inventory depletion, per-item vitamin trends and the monthly spend
// forecast. Computation is pure; the cache write-back is an explicit,
// best-effort step on top.
type Service struct {
	batches BatchRepository
	logger  *zap.Logger
}

// NewService wires a forecasting service instance.
func NewService(batches BatchRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{batches: batches, logger: logger}
}

// FeedForecast computes the 30-day feed plan and derived weight
// projection for a batch, then writes the feed plan back onto the batch
// record as a cache. The cache write never fails the request: the result
// is advisory and recomputed on every call anyway.
func (s *Service) FeedForecast(ctx context.Context, batchID string) (*models.FeedForecastResult, error) {
	batch, err := s.batches.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	feed, err := forecast.FeedForecast(batch.StartingPopulation)
	if err != nil {
		return nil, err
	}

	startWeight := batch.AverageChickWeight
	if startWeight <= 0 {
		startWeight = defaultChickWeightGrams
	}

	weight, err := forecast.WeightForecast(startWeight, batch.StartingPopulation, feed)
	if err != nil {
		return nil, err
	}

	if err := s.batches.SaveFeedForecast(ctx, batchID, feed); err != nil {
		s.logger.Warn("feed forecast cache write failed", zap.String("batch_id", batchID), zap.Error(err))
	}

	return &models.FeedForecastResult{
		BatchName:      batch.BatchName,
		FeedForecast:   feed,
		WeightForecast: weight,
	}, nil
}

// InventoryForecast simulates depletion of every qualifying medication/
// vitamin purchase on the batch's ledger. Malformed rows and an
// unparseable batch date degrade to an empty schedule — this is
// reporting, not a control path.
func (s *Service) InventoryForecast(ctx context.Context, batchID string) ([]models.DepletionEvent, error) {
	batch, err := s.batches.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	events := make([]models.DepletionEvent, 0)

	batchStart, err := time.Parse(dateLayout, batch.DateCreated)
	if err != nil {
		s.logger.Warn("batch has unparseable start date, skipping inventory forecast",
			zap.String("batch_id", batchID), zap.String("date", batch.DateCreated))
		return events, nil
	}

	lots := make([]forecast.InventoryLot, 0, len(batch.Expenses))
	for _, exp := range batch.Expenses {
		if lot, ok := forecast.LotFromExpense(exp); ok {
			lots = append(lots, lot)
		}
	}
	// Ledger entries live in a map; order lots for stable output.
	sort.Slice(lots, func(i, j int) bool {
		if !lots[i].PurchaseDate.Equal(lots[j].PurchaseDate) {
			return lots[i].PurchaseDate.Before(lots[j].PurchaseDate)
		}
		return lots[i].ItemName < lots[j].ItemName
	})

	for _, lot := range lots {
		schedule, err := forecast.DepletionSchedule(batch.StartingPopulation, batchStart, lot)
		if err != nil {
			return nil, err
		}
		events = append(events, schedule...)
	}

	if err := s.batches.SaveVitaminForecast(ctx, batchID, events); err != nil {
		s.logger.Warn("vitamin forecast cache write failed", zap.String("batch_id", batchID), zap.Error(err))
	}

	return events, nil
}

// VitaminTrends verifies the batch exists and mines all completed
// batches for per-item usage trends.
func (s *Service) VitaminTrends(ctx context.Context, batchID string) ([]models.TrendSummary, error) {
	if _, err := s.batches.GetBatch(ctx, batchID); err != nil {
		return nil, err
	}

	batches, err := s.batches.ListBatches(ctx)
	if err != nil {
		return nil, err
	}

	return forecast.VitaminTrends(batches), nil
}

// MonthlyVitaminForecast projects vitamin/medication spend forward for
// the requested number of months.
func (s *Service) MonthlyVitaminForecast(ctx context.Context, horizonMonths int) (models.MonthlyVitaminForecast, error) {
	batches, err := s.batches.ListBatches(ctx)
	if err != nil {
		return models.MonthlyVitaminForecast{}, err
	}

	return forecast.MonthlyVitaminForecast(batches, horizonMonths), nil
}
