package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
)

type fakeBatchLister struct {
	batches []models.Batch
	err     error
}

func (f *fakeBatchLister) ListBatches(ctx context.Context) ([]models.Batch, error) {
	return f.batches, f.err
}

type fakeExporter struct {
	writeRange string
	row        []interface{}
	err        error
}

func (f *fakeExporter) AppendRow(ctx context.Context, writeRange string, row []interface{}) error {
	f.writeRange = writeRange
	f.row = row
	return f.err
}

func (f *fakeExporter) ReadRange(ctx context.Context, readRange string) ([][]interface{}, error) {
	return nil, nil
}

func ledgerFixture() []models.Batch {
	return []models.Batch{
		{
			ID: "batch-1",
			Expenses: map[string]models.ExpenseRecord{
				"e1": {ItemName: "Starter Feed", Amount: 1200, Date: "2026-08-31"},
				"e2": {ItemName: "Vetracin", Amount: 350, Date: "2026-09-01"},
			},
			Sales: map[string]models.SalesRecord{
				"s1": {Quantity: 50, TotalAmount: 9000, DateOfPurchase: "2026-09-01"},
			},
		},
		{
			ID: "batch-2",
			Expenses: map[string]models.ExpenseRecord{
				"e3": {ItemName: "Electrolytes", Amount: 150, Date: "2026-09-01"},
			},
			Sales: map[string]models.SalesRecord{
				"s2": {Quantity: 30, TotalAmount: 5400, DateOfPurchase: "2026-08-30"},
			},
		},
	}
}

func TestSummarizeDay(t *testing.T) {
	svc := NewService(&fakeExporter{}, &fakeBatchLister{batches: ledgerFixture()}, zap.NewNop())

	day := time.Date(2026, time.September, 1, 15, 0, 0, 0, time.UTC)
	summary, err := svc.SummarizeDay(context.Background(), day)
	require.NoError(t, err)

	require.Equal(t, "2026-09-01", summary.Date)
	require.InDelta(t, 500.0, summary.ExpenseTotal, 0.001)
	require.Equal(t, 2, summary.ExpenseCount)
	require.InDelta(t, 9000.0, summary.SalesTotal, 0.001)
	require.Equal(t, 1, summary.SalesCount)
	require.Equal(t, 50, summary.BirdsSold)
}

func TestSummarizeDay_EmptyDay(t *testing.T) {
	svc := NewService(&fakeExporter{}, &fakeBatchLister{batches: ledgerFixture()}, zap.NewNop())

	day := time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)
	summary, err := svc.SummarizeDay(context.Background(), day)
	require.NoError(t, err)
	require.Zero(t, summary.ExpenseCount)
	require.Zero(t, summary.SalesCount)
	require.Zero(t, summary.BirdsSold)
}

func TestExportDailyLedger_AppendsRow(t *testing.T) {
	exporter := &fakeExporter{}
	svc := NewService(exporter, &fakeBatchLister{batches: ledgerFixture()}, zap.NewNop())

	day := time.Date(2026, time.September, 1, 20, 0, 0, 0, time.UTC)
	require.NoError(t, svc.ExportDailyLedger(context.Background(), day))

	require.Equal(t, "Ledger!A:G", exporter.writeRange)
	require.Equal(t, []interface{}{"2026-09-01", 500.0, 2, 9000.0, 1, 50, 8500.0}, exporter.row)
}

func TestExportDailyLedger_ListFailure(t *testing.T) {
	svc := NewService(&fakeExporter{}, &fakeBatchLister{err: errors.New("mongo down")}, zap.NewNop())

	err := svc.ExportDailyLedger(context.Background(), time.Now())
	require.Error(t, err)
}

func TestExportDailyLedger_AppendFailure(t *testing.T) {
	exporter := &fakeExporter{err: errors.New("quota exceeded")}
	svc := NewService(exporter, &fakeBatchLister{batches: ledgerFixture()}, zap.NewNop())

	err := svc.ExportDailyLedger(context.Background(), time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "export daily ledger")
}
