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

// mongodbTourRepository implements TourRepository using MongoDB
type mongodbTourRepository struct {
	collection *mongo.Collection
}

// NewTourRepository creates a new MongoDB-based tour repository
func NewTourRepository(db *mongo.Database) TourRepository {
	return &mongodbTourRepository{
		collection: db.Collection("tours"),
	}
}

func (r *mongodbTourRepository) Create(ctx context.Context, tour *model.Tour) error {
	now := time.Now()
	tour.CreatedAt = now
	tour.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, tour)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		tour.ID = oid
	}

	return nil
}

func (r *mongodbTourRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Tour, error) {
	var tour model.Tour
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tour)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, err
	}

	return &tour, nil
}

func (r *mongodbTourRepository) List(ctx context.Context, activeOnly bool) ([]*model.Tour, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tours []*model.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, err
	}

	return tours, nil
}

func (r *mongodbTourRepository) Update(ctx context.Context, tour *model.Tour) error {
	tour.UpdatedAt = time.Now()
	result, err := r.collection.UpdateByID(ctx, tour.ID, bson.M{"$set": bson.M{
		"title":            tour.Title,
		"base_price_cents": tour.BasePriceCents,
		"location":         tour.Location,
		"category":         tour.Category,
		"duration_days":    tour.DurationDays,
		"extra_services":   tour.ExtraServices,
		"active":           tour.Active,
		"updated_at":       tour.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTourNotFound
	}

	return nil
}

func (r *mongodbTourRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrTourNotFound
	}

	return nil
}

// SetCampaignDiscount writes discount_percent and is_campaign in a single
// update so a tour can never carry the rate of one campaign run and the flag
// of another. The filter excludes tours already in the target state, which
// both makes re-runs cheap and lets the caller count real changes.
func (r *mongodbTourRepository) SetCampaignDiscount(ctx context.Context, id primitive.ObjectID, percent int, isCampaign bool) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{
			"_id": id,
			"$or": bson.A{
				bson.M{"discount_percent": bson.M{"$ne": percent}},
				bson.M{"is_campaign": bson.M{"$ne": isCampaign}},
			},
		},
		bson.M{"$set": bson.M{
			"discount_percent": percent,
			"is_campaign":      isCampaign,
			"updated_at":       time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}

	return result.ModifiedCount > 0, nil
}

func (r *mongodbTourRepository) IncrementBookingCount(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"booking_count": 1}})
	return err
}
