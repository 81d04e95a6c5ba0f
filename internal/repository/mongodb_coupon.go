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

// mongodbCouponRepository implements CouponRepository using MongoDB
type mongodbCouponRepository struct {
	collection *mongo.Collection
}

// NewCouponRepository creates a new MongoDB-based coupon repository
func NewCouponRepository(db *mongo.Database) CouponRepository {
	return &mongodbCouponRepository{
		collection: db.Collection("coupons"),
	}
}

func (r *mongodbCouponRepository) Create(ctx context.Context, coupon *model.Coupon) error {
	_, err := r.collection.InsertOne(ctx, coupon)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrCouponAlreadyExists
		}
		return err
	}

	return nil
}

func (r *mongodbCouponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrCouponNotFound
		}
		return nil, err
	}

	return &coupon, nil
}

func (r *mongodbCouponRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrCouponNotFound
		}
		return nil, err
	}

	return &coupon, nil
}

func (r *mongodbCouponRepository) List(ctx context.Context) ([]*model.Coupon, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coupons []*model.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}

	return coupons, nil
}

func (r *mongodbCouponRepository) Update(ctx context.Context, coupon *model.Coupon) error {
	coupon.UpdatedAt = time.Now()
	result, err := r.collection.UpdateByID(ctx, coupon.ID, bson.M{"$set": bson.M{
		"description":        coupon.Description,
		"discount_type":      coupon.DiscountType,
		"discount_value":     coupon.DiscountValue,
		"max_discount_cents": coupon.MaxDiscountCents,
		"min_purchase_cents": coupon.MinPurchaseCents,
		"usage_limit":        coupon.UsageLimit,
		"expires_at":         coupon.ExpiresAt,
		"active":             coupon.Active,
		"updated_at":         coupon.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrCouponNotFound
	}

	return nil
}

func (r *mongodbCouponRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrCouponNotFound
	}

	return nil
}

// IncrementUsage consumes one redemption. The filter requires usage_count to
// still be under usage_limit, so two concurrent bookings cannot both push the
// counter past the limit.
func (r *mongodbCouponRepository) IncrementUsage(ctx context.Context, id primitive.ObjectID) error {
	updateResult := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{
			"_id":   id,
			"$expr": bson.M{"$lt": bson.A{"$usage_count", "$usage_limit"}},
		},
		bson.M{
			"$inc": bson.M{"usage_count": 1},
			"$set": bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetUpsert(false),
	)

	if updateResult.Err() != nil {
		if updateResult.Err() == mongo.ErrNoDocuments {
			return apperrors.ErrUsageLimitReached
		}
		return updateResult.Err()
	}

	return nil
}
