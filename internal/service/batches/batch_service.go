package batches

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"poultryfarm/backend/internal/domain/models"
	"poultryfarm/backend/internal/repository/mongodb"
)

// ErrValidation indicates a malformed batch or ledger payload.
var ErrValidation = errors.New("invalid payload")

// Service owns the batch lifecycle and its embedded expense/sales ledgers.
type Service struct {
	repo   mongodb.BatchStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService constructs a batch service.
func NewService(repo mongodb.BatchStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// CreateBatch validates and persists a new batch in active status.
func (s *Service) CreateBatch(ctx context.Context, batch models.Batch) (string, error) {
	if batch.BatchName == "" {
		return "", fmt.Errorf("%w: batchName is required", ErrValidation)
	}
	if batch.StartingPopulation < 0 {
		return "", fmt.Errorf("%w: startingPopulation must not be negative", ErrValidation)
	}

	batch.Status = models.BatchStatusActive
	batch.Expenses = nil
	batch.Sales = nil

	id, err := s.repo.CreateBatch(ctx, batch)
	if err != nil {
		return "", err
	}

	s.logger.Info("batch created", zap.String("batch_id", id), zap.Int("population", batch.StartingPopulation))
	return id, nil
}

// ListBatches returns all batches with their ledgers.
func (s *Service) ListBatches(ctx context.Context) ([]models.Batch, error) {
	return s.repo.ListBatches(ctx)
}

// UpdateStatus moves a batch through its lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, batchID, status string) error {
	if status != models.BatchStatusActive && status != models.BatchStatusCompleted {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.repo.UpdateBatchStatus(ctx, batchID, status)
}

// DeleteBatch removes a batch and its ledgers.
func (s *Service) DeleteBatch(ctx context.Context, batchID string) error {
	return s.repo.DeleteBatch(ctx, batchID)
}

// AddExpense appends an expense to the batch ledger.
func (s *Service) AddExpense(ctx context.Context, batchID string, exp models.ExpenseRecord) (string, error) {
	if exp.ItemName == "" || exp.Category == "" {
		return "", fmt.Errorf("%w: category and itemName are required", ErrValidation)
	}
	if exp.Quantity < 0 || exp.Amount < 0 {
		return "", fmt.Errorf("%w: negative quantity or amount", ErrValidation)
	}

	exp.Timestamp = s.now().UnixMilli()
	return s.repo.AddExpense(ctx, batchID, exp)
}

// ListExpenses returns the expense ledger of a batch.
func (s *Service) ListExpenses(ctx context.Context, batchID string) (map[string]models.ExpenseRecord, error) {
	batch, err := s.repo.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch.Expenses == nil {
		return map[string]models.ExpenseRecord{}, nil
	}
	return batch.Expenses, nil
}

// UpdateExpense replaces an expense record in place.
func (s *Service) UpdateExpense(ctx context.Context, batchID, expenseID string, exp models.ExpenseRecord) error {
	if exp.Quantity < 0 || exp.Amount < 0 {
		return fmt.Errorf("%w: negative quantity or amount", ErrValidation)
	}
	exp.Timestamp = s.now().UnixMilli()
	return s.repo.UpdateExpense(ctx, batchID, expenseID, exp)
}

// RecategorizeExpense updates only an expense's category and feed type.
func (s *Service) RecategorizeExpense(ctx context.Context, batchID, expenseID, category, feedType string) error {
	if category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	return s.repo.UpdateExpenseCategory(ctx, batchID, expenseID, category, feedType)
}

// DeleteExpense removes an expense record.
func (s *Service) DeleteExpense(ctx context.Context, batchID, expenseID string) error {
	return s.repo.DeleteExpense(ctx, batchID, expenseID)
}

// AddSale appends a sale, computing the total server-side.
func (s *Service) AddSale(ctx context.Context, batchID string, sale models.SalesRecord) (string, error) {
	if sale.Quantity < 0 || sale.PricePerChicken < 0 {
		return "", fmt.Errorf("%w: negative quantity or price", ErrValidation)
	}

	sale.TotalAmount = float64(sale.Quantity) * sale.PricePerChicken
	sale.Timestamp = s.now().UnixMilli()
	return s.repo.AddSale(ctx, batchID, sale)
}

// ListSales returns the sales ledger of a batch.
func (s *Service) ListSales(ctx context.Context, batchID string) (map[string]models.SalesRecord, error) {
	batch, err := s.repo.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch.Sales == nil {
		return map[string]models.SalesRecord{}, nil
	}
	return batch.Sales, nil
}

// UpdateSale replaces a sale record, recomputing the total.
func (s *Service) UpdateSale(ctx context.Context, batchID, saleID string, sale models.SalesRecord) error {
	if sale.Quantity < 0 || sale.PricePerChicken < 0 {
		return fmt.Errorf("%w: negative quantity or price", ErrValidation)
	}

	sale.TotalAmount = float64(sale.Quantity) * sale.PricePerChicken
	sale.Timestamp = s.now().UnixMilli()
	return s.repo.UpdateSale(ctx, batchID, saleID, sale)
}

// DeleteSale removes a sale record.
func (s *Service) DeleteSale(ctx context.Context, batchID, saleID string) error {
	return s.repo.DeleteSale(ctx, batchID, saleID)
}
