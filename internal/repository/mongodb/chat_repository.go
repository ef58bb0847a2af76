package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"poultryfarm/backend/internal/domain/models"
)

// ChatStore defines persistence for per-user admin chat threads.
type ChatStore interface {
	PushMessage(ctx context.Context, uid string, msg models.ChatMessage) (string, error)
	ListMessages(ctx context.Context, uid string) ([]models.ChatMessage, error)
	UpdateMessageText(ctx context.Context, uid, messageID, newText string) error
	DeleteMessage(ctx context.Context, uid, messageID string) error
}

// chatDoc is the stored shape of one message; the thread owner's uid
// lives alongside the message fields.
type chatDoc struct {
	ID        string `bson:"_id"`
	UID       string `bson:"uid"`
	Text      string `bson:"text"`
	Sender    string `bson:"sender"`
	Timestamp int64  `bson:"timestamp"`
	IsEdited  bool   `bson:"isEdited"`
}

// PushMessage appends a message to the recipient's thread.
func (r *Repository) PushMessage(ctx context.Context, uid string, msg models.ChatMessage) (string, error) {
	doc := chatDoc{
		ID:        newID(),
		UID:       uid,
		Text:      msg.Text,
		Sender:    msg.Sender,
		Timestamp: msg.Timestamp,
		IsEdited:  msg.IsEdited,
	}
	if _, err := r.db.Collection(chatCollection).InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("push message to %s: %w", uid, err)
	}
	return doc.ID, nil
}

// ListMessages returns a user's thread in chronological order.
func (r *Repository) ListMessages(ctx context.Context, uid string) ([]models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	cursor, err := r.db.Collection(chatCollection).Find(ctx, bson.M{"uid": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list messages for %s: %w", uid, err)
	}
	defer cursor.Close(ctx)

	var docs []chatDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode messages for %s: %w", uid, err)
	}

	messages := make([]models.ChatMessage, len(docs))
	for i, doc := range docs {
		messages[i] = models.ChatMessage{
			ID:        doc.ID,
			Text:      doc.Text,
			Sender:    doc.Sender,
			Timestamp: doc.Timestamp,
			IsEdited:  doc.IsEdited,
		}
	}
	return messages, nil
}

// UpdateMessageText edits a message's text and flags it as edited.
func (r *Repository) UpdateMessageText(ctx context.Context, uid, messageID, newText string) error {
	filter := bson.M{"_id": messageID, "uid": uid}
	update := bson.M{"$set": bson.M{"text": newText, "isEdited": true}}
	res, err := r.db.Collection(chatCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("edit message %s: %w", messageID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMessage removes one message from a thread.
func (r *Repository) DeleteMessage(ctx context.Context, uid, messageID string) error {
	res, err := r.db.Collection(chatCollection).DeleteOne(ctx, bson.M{"_id": messageID, "uid": uid})
	if err != nil {
		return fmt.Errorf("delete message %s: %w", messageID, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
