package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingStore implements domain.SettingRepository on MongoDB.
type SettingStore struct {
	collection *mongo.Collection
}

func NewSettingStore(db *mongo.Database) *SettingStore {
	return &SettingStore{collection: db.Collection(collectionSettings)}
}

func (s *SettingStore) ensureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *SettingStore) Get(ctx context.Context, name string) (domain.GlobalSetting, error) {
	var setting domain.GlobalSetting

	err := s.collection.FindOne(ctx, bson.M{"name": name}).Decode(&setting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Absent settings render as empty option lists, not as errors.
		return domain.GlobalSetting{Name: name, ArrayValue: []string{}}, nil
	}
	if err != nil {
		return domain.GlobalSetting{}, fmt.Errorf("failed to load setting %s: %w", name, err)
	}

	return setting, nil
}

func (s *SettingStore) Upsert(ctx context.Context, name string, listAdd []string, scalar string) error {
	now := time.Now().UTC()

	// The scalar is always replaced, even with an empty string, so an update
	// can clear it. Lists only ever grow via set union.
	update := bson.M{
		"$set": bson.M{
			"stringValue": scalar,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"name":      name,
			"createdAt": now,
		},
	}

	if normalized := domain.NormalizeNames(listAdd); len(normalized) > 0 {
		update["$addToSet"] = bson.M{"arrayValue": bson.M{"$each": normalized}}
	}

	_, err := s.collection.UpdateOne(ctx, bson.M{"name": name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", name, err)
	}

	return nil
}
