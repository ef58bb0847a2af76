package batches

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
	"poultryfarm/backend/internal/repository/mongodb"
)

type fakeBatchStore struct {
	batches map[string]*models.Batch

	createdBatch models.Batch
	addedExpense models.ExpenseRecord
	addedSale    models.SalesRecord
	updatedSale  models.SalesRecord
	status       string
}

func newFakeBatchStore() *fakeBatchStore {
	return &fakeBatchStore{batches: map[string]*models.Batch{}}
}

func (f *fakeBatchStore) CreateBatch(ctx context.Context, batch models.Batch) (string, error) {
	f.createdBatch = batch
	return "batch-1", nil
}

func (f *fakeBatchStore) GetBatch(ctx context.Context, id string) (*models.Batch, error) {
	batch, ok := f.batches[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	return batch, nil
}

func (f *fakeBatchStore) ListBatches(ctx context.Context) ([]models.Batch, error) {
	out := make([]models.Batch, 0, len(f.batches))
	for _, b := range f.batches {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBatchStore) UpdateBatchStatus(ctx context.Context, id string, status string) error {
	f.status = status
	return nil
}

func (f *fakeBatchStore) DeleteBatch(ctx context.Context, id string) error { return nil }

func (f *fakeBatchStore) AddExpense(ctx context.Context, batchID string, exp models.ExpenseRecord) (string, error) {
	f.addedExpense = exp
	return "exp-1", nil
}

func (f *fakeBatchStore) UpdateExpense(ctx context.Context, batchID, expenseID string, exp models.ExpenseRecord) error {
	return nil
}

func (f *fakeBatchStore) UpdateExpenseCategory(ctx context.Context, batchID, expenseID, category, feedType string) error {
	return nil
}

func (f *fakeBatchStore) DeleteExpense(ctx context.Context, batchID, expenseID string) error {
	return nil
}

func (f *fakeBatchStore) AddSale(ctx context.Context, batchID string, sale models.SalesRecord) (string, error) {
	f.addedSale = sale
	return "sale-1", nil
}

func (f *fakeBatchStore) UpdateSale(ctx context.Context, batchID, saleID string, sale models.SalesRecord) error {
	f.updatedSale = sale
	return nil
}

func (f *fakeBatchStore) DeleteSale(ctx context.Context, batchID, saleID string) error { return nil }

func (f *fakeBatchStore) SaveFeedForecast(ctx context.Context, batchID string, entries []models.FeedForecastEntry) error {
	return nil
}

func (f *fakeBatchStore) SaveVitaminForecast(ctx context.Context, batchID string, events []models.DepletionEvent) error {
	return nil
}

func newTestService(store *fakeBatchStore) *Service {
	svc := NewService(store, zap.NewNop())
	svc.now = func() time.Time { return time.UnixMilli(1756700000000) }
	return svc
}

func TestCreateBatch_ForcesActiveAndEmptyLedgers(t *testing.T) {
	store := newFakeBatchStore()
	svc := newTestService(store)

	id, err := svc.CreateBatch(context.Background(), models.Batch{
		BatchName:          "September Flock",
		StartingPopulation: 1000,
		Status:             models.BatchStatusCompleted,
		Expenses:           map[string]models.ExpenseRecord{"x": {}},
	})
	require.NoError(t, err)
	require.Equal(t, "batch-1", id)
	require.Equal(t, models.BatchStatusActive, store.createdBatch.Status)
	require.Nil(t, store.createdBatch.Expenses)
	require.Nil(t, store.createdBatch.Sales)
}

func TestCreateBatch_Validation(t *testing.T) {
	svc := newTestService(newFakeBatchStore())

	_, err := svc.CreateBatch(context.Background(), models.Batch{StartingPopulation: 100})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateBatch(context.Background(), models.Batch{BatchName: "x", StartingPopulation: -5})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatus_RejectsUnknown(t *testing.T) {
	store := newFakeBatchStore()
	svc := newTestService(store)

	require.ErrorIs(t, svc.UpdateStatus(context.Background(), "batch-1", "archived"), ErrValidation)

	require.NoError(t, svc.UpdateStatus(context.Background(), "batch-1", models.BatchStatusCompleted))
	require.Equal(t, models.BatchStatusCompleted, store.status)
}

func TestAddExpense_StampsTimestamp(t *testing.T) {
	store := newFakeBatchStore()
	svc := newTestService(store)

	id, err := svc.AddExpense(context.Background(), "batch-1", models.ExpenseRecord{
		Category: "Feeds",
		ItemName: "Starter Feed",
		Quantity: 50,
		Amount:   1200,
	})
	require.NoError(t, err)
	require.Equal(t, "exp-1", id)
	require.Equal(t, int64(1756700000000), store.addedExpense.Timestamp)
}

func TestAddExpense_Validation(t *testing.T) {
	svc := newTestService(newFakeBatchStore())

	_, err := svc.AddExpense(context.Background(), "batch-1", models.ExpenseRecord{ItemName: "Feed"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddExpense(context.Background(), "batch-1", models.ExpenseRecord{
		Category: "Feeds", ItemName: "Feed", Amount: -1,
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestAddSale_ComputesTotal(t *testing.T) {
	store := newFakeBatchStore()
	svc := newTestService(store)

	_, err := svc.AddSale(context.Background(), "batch-1", models.SalesRecord{
		BuyerName:       "Dela Cruz",
		Quantity:        40,
		PricePerChicken: 185.5,
		TotalAmount:     1, // client-sent totals are ignored
	})
	require.NoError(t, err)
	require.InDelta(t, 7420.0, store.addedSale.TotalAmount, 0.001)
	require.Equal(t, int64(1756700000000), store.addedSale.Timestamp)
}

func TestUpdateSale_RecomputesTotal(t *testing.T) {
	store := newFakeBatchStore()
	svc := newTestService(store)

	err := svc.UpdateSale(context.Background(), "batch-1", "sale-1", models.SalesRecord{
		Quantity:        10,
		PricePerChicken: 200,
	})
	require.NoError(t, err)
	require.InDelta(t, 2000.0, store.updatedSale.TotalAmount, 0.001)
}

func TestAddSale_Validation(t *testing.T) {
	svc := newTestService(newFakeBatchStore())

	_, err := svc.AddSale(context.Background(), "batch-1", models.SalesRecord{Quantity: -1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestListExpenses_UnknownBatch(t *testing.T) {
	svc := newTestService(newFakeBatchStore())

	_, err := svc.ListExpenses(context.Background(), "missing")
	require.ErrorIs(t, err, mongodb.ErrNotFound)
}

func TestListExpenses_NilLedger(t *testing.T) {
	store := newFakeBatchStore()
	store.batches["batch-1"] = &models.Batch{ID: "batch-1"}
	svc := newTestService(store)

	ledger, err := svc.ListExpenses(context.Background(), "batch-1")
	require.NoError(t, err)
	require.NotNil(t, ledger)
	require.Empty(t, ledger)
}

func TestRecategorizeExpense_RequiresCategory(t *testing.T) {
	svc := newTestService(newFakeBatchStore())

	err := svc.RecategorizeExpense(context.Background(), "batch-1", "exp-1", "", "")
	require.ErrorIs(t, err, ErrValidation)
}
