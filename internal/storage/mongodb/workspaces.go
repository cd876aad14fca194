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

// WorkspaceStore implements domain.WorkspaceRepository on MongoDB.
type WorkspaceStore struct {
	collection *mongo.Collection
}

func NewWorkspaceStore(db *mongo.Database) *WorkspaceStore {
	return &WorkspaceStore{collection: db.Collection(collectionWorkspaces)}
}

func (s *WorkspaceStore) ensureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "teamId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *WorkspaceStore) UpsertOnAuth(ctx context.Context, teamID, name, accessToken string) error {
	now := time.Now().UTC()

	// Only the token is refreshed for an existing workspace; name, companies
	// and calendar id survive re-authorization untouched.
	update := bson.M{
		"$set": bson.M{
			"accessToken": accessToken,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"teamId":    teamID,
			"name":      name,
			"companies": []string{},
			"createdAt": now,
		},
	}

	_, err := s.collection.UpdateOne(ctx, bson.M{"teamId": teamID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert workspace %s: %w", teamID, err)
	}

	return nil
}

func (s *WorkspaceStore) AppendCompanies(ctx context.Context, teamID string, names []string) error {
	workspace, err := s.Get(ctx, teamID)
	if err != nil {
		return err
	}

	incoming := domain.NormalizeNames(names)
	union := domain.UnionNames(workspace.Companies, incoming)

	if len(union) > domain.MaxCompanies {
		return &domain.CompanyLimitError{Remaining: domain.MaxCompanies - len(workspace.Companies)}
	}

	update := bson.M{
		"$addToSet": bson.M{"companies": bson.M{"$each": incoming}},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}

	if _, err := s.collection.UpdateOne(ctx, bson.M{"teamId": teamID}, update); err != nil {
		return fmt.Errorf("failed to append companies for %s: %w", teamID, err)
	}

	return nil
}

func (s *WorkspaceStore) SetCalendar(ctx context.Context, teamID, calendarID string) error {
	update := bson.M{
		"$set": bson.M{
			"calendarId": calendarID,
			"updatedAt":  time.Now().UTC(),
		},
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"teamId": teamID}, update)
	if err != nil {
		return fmt.Errorf("failed to set calendar for %s: %w", teamID, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrWorkspaceNotFound
	}

	return nil
}

func (s *WorkspaceStore) Get(ctx context.Context, teamID string) (domain.Workspace, error) {
	var workspace domain.Workspace

	err := s.collection.FindOne(ctx, bson.M{"teamId": teamID}).Decode(&workspace)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Workspace{}, domain.ErrWorkspaceNotFound
	}
	if err != nil {
		return domain.Workspace{}, fmt.Errorf("failed to load workspace %s: %w", teamID, err)
	}

	return workspace, nil
}
