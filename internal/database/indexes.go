package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the core invariants depend on. The unique
// email index is what makes concurrent registrations with the same email
// resolve to exactly one account; without it a check-then-insert race could
// create duplicates.
func EnsureIndexes(ctx context.Context) error {
	users := DB.Collection("users")
	userModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_email_unique").SetUnique(true),
		},
	}
	for _, m := range userModels {
		if _, err := users.Indexes().CreateOne(ctx, m); err != nil {
			return err
		}
	}

	entries := DB.Collection("journal_entries")
	entryModels := []mongo.IndexModel{
		{
			// Compound index on (user_id, timestamp) so owner-scoped listing in
			// creation order stays an index walk.
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "timestamp", Value: 1},
			},
			Options: options.Index().SetName("idx_user_timestamp"),
		},
	}
	for _, m := range entryModels {
		if _, err := entries.Indexes().CreateOne(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
