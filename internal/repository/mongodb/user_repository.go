package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"poultryfarm/backend/internal/domain/models"
)

// UserStore defines persistence for user profiles keyed by identity uid.
type UserStore interface {
	SaveProfile(ctx context.Context, profile models.UserProfile) error
	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
	DeleteProfile(ctx context.Context, uid string) error
}

// SaveProfile upserts a user's profile document.
func (r *Repository) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	filter := bson.M{"_id": profile.UID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.db.Collection(userCollection).ReplaceOne(ctx, filter, profile, opts); err != nil {
		return fmt.Errorf("save profile %s: %w", profile.UID, err)
	}
	return nil
}

// ListProfiles returns every stored user profile.
func (r *Repository) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	cursor, err := r.db.Collection(userCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.UserProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}

// DeleteProfile removes a user's profile and their chat thread.
func (r *Repository) DeleteProfile(ctx context.Context, uid string) error {
	res, err := r.db.Collection(userCollection).DeleteOne(ctx, bson.M{"_id": uid})
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", uid, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	if _, err := r.db.Collection(chatCollection).DeleteMany(ctx, bson.M{"uid": uid}); err != nil {
		return fmt.Errorf("delete chat thread %s: %w", uid, err)
	}
	return nil
}
