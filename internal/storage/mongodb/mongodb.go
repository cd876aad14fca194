package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collectionWorkspaces  = "teams"
	collectionSchedules   = "interviews-schedules"
	collectionExperiences = "interview-experiences"
	collectionSettings    = "global-variables"
)

// Connect opens and verifies a MongoDB connection.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

// Stores bundles every repository backed by one database.
type Stores struct {
	Workspaces  *WorkspaceStore
	Schedules   *ScheduleStore
	Experiences *ExperienceStore
	Settings    *SettingStore
}

func NewStores(db *mongo.Database) *Stores {
	return &Stores{
		Workspaces:  NewWorkspaceStore(db),
		Schedules:   NewScheduleStore(db),
		Experiences: NewExperienceStore(db),
		Settings:    NewSettingStore(db),
	}
}

// EnsureIndexes creates the unique indexes every store relies on. Duplicate
// submissions are rejected by these indexes, not by application locking.
func (s *Stores) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.Workspaces.ensureIndexes(ctx); err != nil {
		return fmt.Errorf("workspace indexes: %w", err)
	}
	if err := s.Schedules.ensureIndexes(ctx); err != nil {
		return fmt.Errorf("schedule indexes: %w", err)
	}
	if err := s.Experiences.ensureIndexes(ctx); err != nil {
		return fmt.Errorf("experience indexes: %w", err)
	}
	if err := s.Settings.ensureIndexes(ctx); err != nil {
		return fmt.Errorf("setting indexes: %w", err)
	}

	return nil
}
