package models

// ChatMessage is one message in a user's admin chat thread.
type ChatMessage struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Text      string `bson:"text" json:"text"`
	Sender    string `bson:"sender" json:"sender"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"`
	IsEdited  bool   `bson:"isEdited" json:"isEdited"`
}
