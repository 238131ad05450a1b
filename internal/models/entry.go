package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JournalEntry is a single timestamped note owned by one user.
// Sentiment and Emotions are reserved for the enrichment pipeline and are
// never set at creation time.
type JournalEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Text      string             `bson:"text" json:"text"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	MoodScore *int               `bson:"mood_score,omitempty" json:"mood_score"`
	Sentiment *string            `bson:"sentiment,omitempty" json:"sentiment"`
	Emotions  []string           `bson:"emotions,omitempty" json:"emotions"`
}
