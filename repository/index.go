package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	noteIndexes := []mongo.IndexModel{
		// Basic user-date index
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_notes_date").
				SetUnique(false),
		},
		// User ID index
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index"),
		},
		// Display ordering index
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "last_clicked", Value: -1},
			},
			Options: options.Index().
				SetName("user_last_clicked").
				SetUnique(false),
		},
	}

	// Both collections carry the same shape and the same access patterns.
	for _, name := range []string{"notes", "checked_notes"} {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, noteIndexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
