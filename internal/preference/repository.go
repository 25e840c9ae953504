package preference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "preferences"

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Preference, error)
	Upsert(ctx context.Context, pref *Preference) (*Preference, error)
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection(collectionName)}
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*Preference, error) {
	var pref Preference
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&pref)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find preference: %w", err)
	}
	return &pref, nil
}

func (r *mongoRepository) Upsert(ctx context.Context, pref *Preference) (*Preference, error) {
	now := time.Now().Unix()

	filter := bson.M{"email": pref.Email}
	update := bson.M{
		"$set": bson.M{
			"artists":   pref.Artists,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"email":     pref.Email,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var updated Preference
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to upsert preference: %w", err)
	}
	return &updated, nil
}
