package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"poultryfarm/backend/internal/domain/models"
)

// BatchStore defines the persistence operations for batches and their
// embedded expense/sales ledgers and forecast caches.
type BatchStore interface {
	CreateBatch(ctx context.Context, batch models.Batch) (string, error)
	GetBatch(ctx context.Context, id string) (*models.Batch, error)
	ListBatches(ctx context.Context) ([]models.Batch, error)
	UpdateBatchStatus(ctx context.Context, id string, status string) error
	DeleteBatch(ctx context.Context, id string) error

	AddExpense(ctx context.Context, batchID string, exp models.ExpenseRecord) (string, error)
	UpdateExpense(ctx context.Context, batchID, expenseID string, exp models.ExpenseRecord) error
	UpdateExpenseCategory(ctx context.Context, batchID, expenseID, category, feedType string) error
	DeleteExpense(ctx context.Context, batchID, expenseID string) error

	AddSale(ctx context.Context, batchID string, sale models.SalesRecord) (string, error)
	UpdateSale(ctx context.Context, batchID, saleID string, sale models.SalesRecord) error
	DeleteSale(ctx context.Context, batchID, saleID string) error

	SaveFeedForecast(ctx context.Context, batchID string, entries []models.FeedForecastEntry) error
	SaveVitaminForecast(ctx context.Context, batchID string, events []models.DepletionEvent) error
}

// CreateBatch inserts a new batch document and returns its generated id.
func (r *Repository) CreateBatch(ctx context.Context, batch models.Batch) (string, error) {
	batch.ID = newID()
	if _, err := r.db.Collection(batchCollection).InsertOne(ctx, batch); err != nil {
		return "", fmt.Errorf("insert batch: %w", err)
	}
	return batch.ID, nil
}

// GetBatch fetches one batch with its embedded ledgers.
func (r *Repository) GetBatch(ctx context.Context, id string) (*models.Batch, error) {
	var batch models.Batch
	err := r.db.Collection(batchCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&batch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find batch %s: %w", id, err)
	}
	return &batch, nil
}

// ListBatches returns all batches.
func (r *Repository) ListBatches(ctx context.Context) ([]models.Batch, error) {
	cursor, err := r.db.Collection(batchCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer cursor.Close(ctx)

	var batches []models.Batch
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, fmt.Errorf("decode batches: %w", err)
	}
	return batches, nil
}

// UpdateBatchStatus sets the lifecycle status of a batch.
func (r *Repository) UpdateBatchStatus(ctx context.Context, id string, status string) error {
	return r.updateBatchFields(ctx, id, bson.M{"status": status})
}

// DeleteBatch removes a batch and everything embedded under it.
func (r *Repository) DeleteBatch(ctx context.Context, id string) error {
	res, err := r.db.Collection(batchCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete batch %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddExpense pushes an expense record into the batch's ledger map and
// returns the generated key.
func (r *Repository) AddExpense(ctx context.Context, batchID string, exp models.ExpenseRecord) (string, error) {
	expenseID := newID()
	if err := r.updateBatchFields(ctx, batchID, bson.M{"expenses." + expenseID: exp}); err != nil {
		return "", err
	}
	return expenseID, nil
}

// UpdateExpense replaces an existing expense record in place.
func (r *Repository) UpdateExpense(ctx context.Context, batchID, expenseID string, exp models.ExpenseRecord) error {
	return r.updateLedgerEntry(ctx, batchID, "expenses", expenseID, exp)
}

// UpdateExpenseCategory recategorizes an expense without touching the
// rest of the record.
func (r *Repository) UpdateExpenseCategory(ctx context.Context, batchID, expenseID, category, feedType string) error {
	prefix := "expenses." + expenseID + "."
	return r.updateExistingLedgerEntry(ctx, batchID, "expenses."+expenseID, bson.M{
		prefix + "category": category,
		prefix + "feedType": feedType,
	})
}

// DeleteExpense removes one expense record from the ledger.
func (r *Repository) DeleteExpense(ctx context.Context, batchID, expenseID string) error {
	return r.unsetLedgerEntry(ctx, batchID, "expenses", expenseID)
}

// AddSale pushes a sales record into the batch's sales map.
func (r *Repository) AddSale(ctx context.Context, batchID string, sale models.SalesRecord) (string, error) {
	saleID := newID()
	if err := r.updateBatchFields(ctx, batchID, bson.M{"sales." + saleID: sale}); err != nil {
		return "", err
	}
	return saleID, nil
}

// UpdateSale replaces an existing sales record in place.
func (r *Repository) UpdateSale(ctx context.Context, batchID, saleID string, sale models.SalesRecord) error {
	return r.updateLedgerEntry(ctx, batchID, "sales", saleID, sale)
}

// DeleteSale removes one sales record from the ledger.
func (r *Repository) DeleteSale(ctx context.Context, batchID, saleID string) error {
	return r.unsetLedgerEntry(ctx, batchID, "sales", saleID)
}

// SaveFeedForecast overwrites the cached feed forecast on the batch
// record. Last writer wins; concurrent writers carry equivalent data.
func (r *Repository) SaveFeedForecast(ctx context.Context, batchID string, entries []models.FeedForecastEntry) error {
	return r.updateBatchFields(ctx, batchID, bson.M{"feedForecast": entries})
}

// SaveVitaminForecast overwrites the cached depletion schedule on the
// batch record.
func (r *Repository) SaveVitaminForecast(ctx context.Context, batchID string, events []models.DepletionEvent) error {
	return r.updateBatchFields(ctx, batchID, bson.M{"vitaminForecast": events})
}

func (r *Repository) updateBatchFields(ctx context.Context, batchID string, fields bson.M) error {
	res, err := r.db.Collection(batchCollection).UpdateOne(ctx, bson.M{"_id": batchID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update batch %s: %w", batchID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// updateLedgerEntry overwrites an embedded ledger entry, requiring that
// the entry already exists so updates cannot silently create records.
func (r *Repository) updateLedgerEntry(ctx context.Context, batchID, ledger, entryID string, value any) error {
	path := ledger + "." + entryID
	return r.updateExistingLedgerEntry(ctx, batchID, path, bson.M{path: value})
}

func (r *Repository) updateExistingLedgerEntry(ctx context.Context, batchID, path string, fields bson.M) error {
	filter := bson.M{"_id": batchID, path: bson.M{"$exists": true}}
	res, err := r.db.Collection(batchCollection).UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update %s on batch %s: %w", path, batchID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) unsetLedgerEntry(ctx context.Context, batchID, ledger, entryID string) error {
	path := ledger + "." + entryID
	filter := bson.M{"_id": batchID, path: bson.M{"$exists": true}}
	res, err := r.db.Collection(batchCollection).UpdateOne(ctx, filter, bson.M{"$unset": bson.M{path: ""}})
	if err != nil {
		return fmt.Errorf("delete %s from batch %s: %w", path, batchID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
