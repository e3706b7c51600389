package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bandsite/cms-api/internal/core/domain"
)

// codeNamespaceExists is returned by create when the collection is present.
const codeNamespaceExists = 48

// EnsureIndexes creates the indexes every repository relies on. The unique
// ones back the 409 responses for taken emails and news slugs.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionNews: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "published", Value: 1}, {Key: "published_at", Value: -1}}},
		},
		collectionGigs: {
			{Keys: bson.D{{Key: "date", Value: 1}}},
		},
		collectionMembers: {
			{Keys: bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}}},
		},
		collectionGuestbook: {
			{Keys: bson.D{{Key: "approved", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		collectionContact: {
			{Keys: bson.D{{Key: "read", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// userSchema mirrors the account constraints at the storage layer so writes
// bypassing the API schemas are rejected too.
func userSchema() bson.M {
	roles := make(bson.A, 0, len(domain.Roles))
	for _, r := range domain.Roles {
		roles = append(roles, string(r))
	}
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"email", "password_hash", "role"},
			"properties": bson.M{
				"email":         bson.M{"bsonType": "string", "pattern": "^[^@\\s]+@[^@\\s]+$"},
				"password_hash": bson.M{"bsonType": "string", "minLength": 1},
				"role":          bson.M{"enum": roles},
				"name":          bson.M{"bsonType": "string", "maxLength": 100},
			},
		},
	}
}

// EnsureValidators installs $jsonSchema validators, creating collections
// as needed.
func EnsureValidators(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	validators := map[string]bson.M{
		collectionUsers: userSchema(),
	}

	for name, validator := range validators {
		err := db.CreateCollection(ctx, name, options.CreateCollection().SetValidator(validator))
		if err == nil {
			continue
		}
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != codeNamespaceExists {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
		if err := db.RunCommand(ctx, bson.D{
			{Key: "collMod", Value: name},
			{Key: "validator", Value: validator},
		}).Err(); err != nil {
			return fmt.Errorf("update validator on %s: %w", name, err)
		}
	}
	return nil
}
