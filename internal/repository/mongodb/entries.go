package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindmosaic/mindmosaic-backend/internal/models"
)

// Entries provides access to the "journal_entries" collection.
type Entries struct {
	coll *mongo.Collection
}

func NewEntries(db *mongo.Database) *Entries {
	return &Entries{coll: db.Collection("journal_entries")}
}

// Insert persists a new entry and fills in its store-generated id.
func (e *Entries) Insert(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	res, err := e.coll.InsertOne(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert entry: unexpected inserted id type %T", res.InsertedID)
	}
	entry.ID = id
	return entry, nil
}

// ListByUser returns the user's entries in creation-time ascending order.
// limit <= 0 means no limit. A user with no entries gets an empty slice.
func (e *Entries) ListByUser(ctx context.Context, userID primitive.ObjectID, limit, skip int64) ([]models.JournalEntry, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "timestamp", Value: 1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	if skip > 0 {
		findOptions.SetSkip(skip)
	}

	cursor, err := e.coll.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.JournalEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}
