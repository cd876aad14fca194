package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExperienceStore implements domain.ExperienceRepository on MongoDB.
type ExperienceStore struct {
	collection *mongo.Collection
}

func NewExperienceStore(db *mongo.Database) *ExperienceStore {
	return &ExperienceStore{collection: db.Collection(collectionExperiences)}
}

func (s *ExperienceStore) ensureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "studentCode", Value: 1},
			{Key: "companyName", Value: 1},
			{Key: "interviewRound", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *ExperienceStore) Create(ctx context.Context, record domain.ExperienceRecord) error {
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err := s.collection.InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("experience for %s at %s round %s: %w",
			record.StudentCode, record.CompanyName, record.InterviewRound, domain.ErrDuplicateRecord)
	}
	if err != nil {
		return fmt.Errorf("failed to create experience record: %w", err)
	}

	return nil
}
