package repository

import (
	"context"
	"time"

	"tour-platform/internal/model"
	apperrors "tour-platform/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongodbAdminRepository implements AdminRepository using MongoDB
type mongodbAdminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository creates a new MongoDB-based admin repository
func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &mongodbAdminRepository{
		collection: db.Collection("admin_users"),
	}
}

func (r *mongodbAdminRepository) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	return &admin, nil
}

func (r *mongodbAdminRepository) Create(ctx context.Context, admin *model.AdminUser) error {
	admin.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, admin)
	return err
}
