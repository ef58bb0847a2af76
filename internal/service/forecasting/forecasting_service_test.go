package forecasting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"poultryfarm/backend/internal/domain/models"
	"poultryfarm/backend/internal/repository/mongodb"
)

type fakeBatchRepo struct {
	batches             map[string]models.Batch
	savedFeedForecast   map[string][]models.FeedForecastEntry
	savedVitaminEvents  map[string][]models.DepletionEvent
	failForecastWrites  bool
	forecastWriteErrors int
}

func newFakeBatchRepo() *fakeBatchRepo {
	return &fakeBatchRepo{
		batches:            make(map[string]models.Batch),
		savedFeedForecast:  make(map[string][]models.FeedForecastEntry),
		savedVitaminEvents: make(map[string][]models.DepletionEvent),
	}
}

func (f *fakeBatchRepo) GetBatch(_ context.Context, id string) (*models.Batch, error) {
	batch, ok := f.batches[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	return &batch, nil
}

func (f *fakeBatchRepo) ListBatches(_ context.Context) ([]models.Batch, error) {
	out := make([]models.Batch, 0, len(f.batches))
	for _, batch := range f.batches {
		out = append(out, batch)
	}
	return out, nil
}

func (f *fakeBatchRepo) SaveFeedForecast(_ context.Context, batchID string, entries []models.FeedForecastEntry) error {
	if f.failForecastWrites {
		f.forecastWriteErrors++
		return mongodb.ErrNotFound
	}
	f.savedFeedForecast[batchID] = entries
	return nil
}

func (f *fakeBatchRepo) SaveVitaminForecast(_ context.Context, batchID string, events []models.DepletionEvent) error {
	if f.failForecastWrites {
		f.forecastWriteErrors++
		return mongodb.ErrNotFound
	}
	f.savedVitaminEvents[batchID] = events
	return nil
}

func testBatch() models.Batch {
	return models.Batch{
		ID:                 "b1",
		BatchName:          "January Broilers",
		DateCreated:        "2026-01-01",
		StartingPopulation: 1000,
		Status:             models.BatchStatusActive,
		Expenses: map[string]models.ExpenseRecord{
			"e1": {
				Category: "Medicine",
				ItemName: "Vetracin",
				Quantity: 1000,
				Unit:     "g",
				Date:     "2026-01-05",
			},
		},
	}
}

func TestFeedForecast_ComputesAndCaches(t *testing.T) {
	repo := newFakeBatchRepo()
	repo.batches["b1"] = testBatch()
	svc := NewService(repo, nil)

	result, err := svc.FeedForecast(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, "January Broilers", result.BatchName)
	require.Len(t, result.FeedForecast, 30)
	require.Len(t, result.WeightForecast, 11)
	require.Equal(t, result.FeedForecast, repo.savedFeedForecast["b1"])
}

func TestFeedForecast_CacheWriteFailureIsNotFatal(t *testing.T) {
	repo := newFakeBatchRepo()
	repo.batches["b1"] = testBatch()
	repo.failForecastWrites = true
	svc := NewService(repo, nil)

	result, err := svc.FeedForecast(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, result.FeedForecast, 30)
	require.Equal(t, 1, repo.forecastWriteErrors)
}

func TestFeedForecast_UnknownBatch(t *testing.T) {
	svc := NewService(newFakeBatchRepo(), nil)

	_, err := svc.FeedForecast(context.Background(), "missing")
	require.ErrorIs(t, err, mongodb.ErrNotFound)
}

func TestInventoryForecast_ProducesSchedule(t *testing.T) {
	repo := newFakeBatchRepo()
	repo.batches["b1"] = testBatch()
	svc := NewService(repo, nil)

	events, err := svc.InventoryForecast(context.Background(), "b1")
	require.NoError(t, err)
	require.NotEmpty(t, events)
	require.Equal(t, 5, events[0].Day)
	require.Equal(t, events, repo.savedVitaminEvents["b1"])
}

func TestInventoryForecast_BadBatchDateDegrades(t *testing.T) {
	repo := newFakeBatchRepo()
	batch := testBatch()
	batch.DateCreated = "last tuesday"
	repo.batches["b1"] = batch
	svc := NewService(repo, nil)

	events, err := svc.InventoryForecast(context.Background(), "b1")
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestVitaminTrends_ChecksBatchExists(t *testing.T) {
	svc := NewService(newFakeBatchRepo(), nil)

	_, err := svc.VitaminTrends(context.Background(), "missing")
	require.ErrorIs(t, err, mongodb.ErrNotFound)
}

func TestVitaminTrends_SpansCompletedBatches(t *testing.T) {
	repo := newFakeBatchRepo()
	first := testBatch()
	first.Status = models.BatchStatusCompleted
	second := testBatch()
	second.ID = "b2"
	second.DateCreated = "2026-02-01"
	second.Status = models.BatchStatusCompleted
	second.Expenses = map[string]models.ExpenseRecord{
		"e1": {Category: "Medicine", ItemName: "Vetracin", Quantity: 1200, Unit: "g", Date: "2026-02-05"},
	}
	repo.batches["b1"] = first
	repo.batches["b2"] = second
	svc := NewService(repo, nil)

	summaries, err := svc.VitaminTrends(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "Vetracin", summaries[0].MedicationName)
	require.Equal(t, models.TrendUp, summaries[0].TrendDirection)
}

func TestMonthlyVitaminForecast_Delegates(t *testing.T) {
	repo := newFakeBatchRepo()
	repo.batches["b1"] = testBatch()
	svc := NewService(repo, nil)

	result, err := svc.MonthlyVitaminForecast(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, models.ForecastStatusInsufficientData, result.Status)
}
