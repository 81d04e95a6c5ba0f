package repository

import (
	"context"
	"time"

	"tour-platform/internal/model"
	apperrors "tour-platform/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongodbCampaignRepository implements CampaignRepository using MongoDB
type mongodbCampaignRepository struct {
	collection *mongo.Collection
}

// NewCampaignRepository creates a new MongoDB-based campaign repository
func NewCampaignRepository(db *mongo.Database) CampaignRepository {
	return &mongodbCampaignRepository{
		collection: db.Collection("campaigns"),
	}
}

func (r *mongodbCampaignRepository) Create(ctx context.Context, campaign *model.Campaign) error {
	now := time.Now()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, campaign)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		campaign.ID = oid
	}

	return nil
}

func (r *mongodbCampaignRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Campaign, error) {
	var campaign model.Campaign
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, err
	}

	return &campaign, nil
}

func (r *mongodbCampaignRepository) List(ctx context.Context) ([]*model.Campaign, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []*model.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (r *mongodbCampaignRepository) ListActive(ctx context.Context, t time.Time) ([]*model.Campaign, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"active":     true,
		"start_date": bson.M{"$lte": t},
		"end_date":   bson.M{"$gte": t},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []*model.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (r *mongodbCampaignRepository) Update(ctx context.Context, campaign *model.Campaign) error {
	campaign.UpdatedAt = time.Now()
	result, err := r.collection.UpdateByID(ctx, campaign.ID, bson.M{"$set": bson.M{
		"name":           campaign.Name,
		"condition_type": campaign.ConditionType,
		"target":         campaign.Target,
		"discount_rate":  campaign.DiscountRate,
		"start_date":     campaign.StartDate,
		"end_date":       campaign.EndDate,
		"active":         campaign.Active,
		"updated_at":     campaign.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrCampaignNotFound
	}

	return nil
}

func (r *mongodbCampaignRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrCampaignNotFound
	}

	return nil
}
