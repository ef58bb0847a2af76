package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
	repo "poultryfarm/backend/internal/repository/sheets"
)

const (
	dateLayout       = "2006-01-02"
	ledgerWriteRange = "Ledger!A:G"
)

// BatchLister is the slice of the batch store the exporter needs.
type BatchLister interface {
	ListBatches(ctx context.Context) ([]models.Batch, error)
}

// Service aggregates the day's ledgers across all batches and mirrors
// the summary into the owner's spreadsheet.
type Service struct {
	exporter repo.Repository
	batches  BatchLister
	logger   *zap.Logger
}

// NewService wires a reporting service instance.
func NewService(exporter repo.Repository, batches BatchLister, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{exporter: exporter, batches: batches, logger: logger}
}

// DailyLedgerSummary is one day's totals across every batch.
type DailyLedgerSummary struct {
	Date         string
	ExpenseTotal float64
	ExpenseCount int
	SalesTotal   float64
	SalesCount   int
	BirdsSold    int
}

// SummarizeDay walks all batches and totals the ledger entries dated on
// the given day.
func (s *Service) SummarizeDay(ctx context.Context, day time.Time) (*DailyLedgerSummary, error) {
	batches, err := s.batches.ListBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("load batches: %w", err)
	}

	summary := &DailyLedgerSummary{Date: day.Format(dateLayout)}

	for _, batch := range batches {
		for _, exp := range batch.Expenses {
			if exp.Date != summary.Date {
				continue
			}
			summary.ExpenseTotal += exp.Amount
			summary.ExpenseCount++
		}
		for _, sale := range batch.Sales {
			if sale.DateOfPurchase != summary.Date {
				continue
			}
			summary.SalesTotal += sale.TotalAmount
			summary.SalesCount++
			summary.BirdsSold += sale.Quantity
		}
	}

	return summary, nil
}

// ExportDailyLedger appends the day's summary row to the spreadsheet.
func (s *Service) ExportDailyLedger(ctx context.Context, day time.Time) error {
	summary, err := s.SummarizeDay(ctx, day)
	if err != nil {
		return err
	}

	row := []interface{}{
		summary.Date,
		summary.ExpenseTotal,
		summary.ExpenseCount,
		summary.SalesTotal,
		summary.SalesCount,
		summary.BirdsSold,
		summary.SalesTotal - summary.ExpenseTotal,
	}

	if err := s.exporter.AppendRow(ctx, ledgerWriteRange, row); err != nil {
		return fmt.Errorf("export daily ledger: %w", err)
	}

	s.logger.Info("daily ledger exported",
		zap.String("date", summary.Date),
		zap.Float64("expenses", summary.ExpenseTotal),
		zap.Float64("sales", summary.SalesTotal))
	return nil
}
