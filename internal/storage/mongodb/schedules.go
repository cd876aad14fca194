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

// ScheduleStore implements domain.ScheduleRepository on MongoDB.
type ScheduleStore struct {
	collection *mongo.Collection
}

func NewScheduleStore(db *mongo.Database) *ScheduleStore {
	return &ScheduleStore{collection: db.Collection(collectionSchedules)}
}

func (s *ScheduleStore) ensureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "studentCode", Value: 1},
			{Key: "companyName", Value: 1},
			{Key: "interviewDate", Value: 1},
			{Key: "interviewStartTime", Value: 1},
			{Key: "interviewEndTime", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *ScheduleStore) Create(ctx context.Context, record domain.ScheduleRecord) error {
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err := s.collection.InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("schedule for %s at %s %s-%s with %s: %w",
			record.StudentCode, record.InterviewDate, record.InterviewStartTime,
			record.InterviewEndTime, record.CompanyName, domain.ErrDuplicateRecord)
	}
	if err != nil {
		return fmt.Errorf("failed to create schedule record: %w", err)
	}

	return nil
}

func (s *ScheduleStore) FindByDate(ctx context.Context, date string) ([]domain.ScheduleRecord, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"interviewDate": date})
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	records := []domain.ScheduleRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode schedules for %s: %w", date, err)
	}

	return records, nil
}
