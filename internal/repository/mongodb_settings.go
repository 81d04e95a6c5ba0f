package repository

import (
	"context"
	"time"

	"tour-platform/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongodbSettingsRepository implements SettingsRepository using MongoDB
type mongodbSettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new MongoDB-based settings repository
func NewSettingsRepository(db *mongo.Database) SettingsRepository {
	return &mongodbSettingsRepository{
		collection: db.Collection("settings"),
	}
}

func (r *mongodbSettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	err := r.collection.FindOne(ctx, bson.M{"_id": model.SettingsID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		defaults := model.DefaultSettings()
		defaults.UpdatedAt = time.Now()
		if err := r.Save(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *mongodbSettingsRepository) Save(ctx context.Context, settings *model.Settings) error {
	settings.ID = model.SettingsID
	settings.UpdatedAt = time.Now()

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": model.SettingsID},
		settings,
		options.Replace().SetUpsert(true),
	)
	return err
}
