package repository

import (
	"context"

	"tour-platform/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongodbAuditRepository implements AuditRepository using MongoDB
type mongodbAuditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository creates a new MongoDB-based audit repository
func NewAuditRepository(db *mongo.Database) AuditRepository {
	return &mongodbAuditRepository{
		collection: db.Collection("audit_logs"),
	}
}

func (r *mongodbAuditRepository) Insert(ctx context.Context, entry *model.AuditLog) error {
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

func (r *mongodbAuditRepository) List(ctx context.Context, limit int64) ([]*model.AuditLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.AuditLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
