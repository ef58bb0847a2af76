package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"poultryfarm/backend/internal/domain/models"
)

// PersonnelStore defines persistence for farm personnel records.
type PersonnelStore interface {
	CreatePersonnel(ctx context.Context, record models.PersonnelRecord) (string, error)
	ListPersonnel(ctx context.Context) ([]models.PersonnelRecord, error)
	UpdatePersonnel(ctx context.Context, id string, record models.PersonnelRecord) error
	DeletePersonnel(ctx context.Context, id string) error
}

// CreatePersonnel inserts a personnel record and returns its id.
func (r *Repository) CreatePersonnel(ctx context.Context, record models.PersonnelRecord) (string, error) {
	record.ID = newID()
	if _, err := r.db.Collection(personnelCollection).InsertOne(ctx, record); err != nil {
		return "", fmt.Errorf("insert personnel record: %w", err)
	}
	return record.ID, nil
}

// ListPersonnel returns all personnel records.
func (r *Repository) ListPersonnel(ctx context.Context) ([]models.PersonnelRecord, error) {
	cursor, err := r.db.Collection(personnelCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list personnel: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.PersonnelRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode personnel: %w", err)
	}
	return records, nil
}

// UpdatePersonnel replaces an existing personnel record.
func (r *Repository) UpdatePersonnel(ctx context.Context, id string, record models.PersonnelRecord) error {
	record.ID = id
	res, err := r.db.Collection(personnelCollection).ReplaceOne(ctx, bson.M{"_id": id}, record)
	if err != nil {
		return fmt.Errorf("update personnel %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePersonnel removes a personnel record.
func (r *Repository) DeletePersonnel(ctx context.Context, id string) error {
	res, err := r.db.Collection(personnelCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete personnel %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
