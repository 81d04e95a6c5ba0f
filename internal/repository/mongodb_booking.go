package repository

import (
	"context"

	"tour-platform/internal/model"
	apperrors "tour-platform/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongodbBookingRepository implements BookingRepository using MongoDB
type mongodbBookingRepository struct {
	collection *mongo.Collection
}

// NewBookingRepository creates a new MongoDB-based booking repository
func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &mongodbBookingRepository{
		collection: db.Collection("bookings"),
	}
}

func (r *mongodbBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}

	return nil
}

func (r *mongodbBookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error) {
	var booking model.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

func (r *mongodbBookingRepository) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	var booking model.Booking
	err := r.collection.FindOne(ctx, bson.M{"reference": reference}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

func (r *mongodbBookingRepository) List(ctx context.Context) ([]*model.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *mongodbBookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}
