package repository

import (
	"context"
	"time"

	"tour-platform/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongodbLoyaltyRepository implements LoyaltyRepository using MongoDB
type mongodbLoyaltyRepository struct {
	collection *mongo.Collection
}

// NewLoyaltyRepository creates a new MongoDB-based loyalty repository
func NewLoyaltyRepository(db *mongo.Database) LoyaltyRepository {
	return &mongodbLoyaltyRepository{
		collection: db.Collection("loyalty_accounts"),
	}
}

// Accrue upserts the account keyed by email and bumps both counters in one
// atomic update, then recomputes the tier from the returned totals.
func (r *mongodbLoyaltyRepository) Accrue(ctx context.Context, email string, points int64) (*model.LoyaltyAccount, error) {
	var account model.LoyaltyAccount
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": email},
		bson.M{
			"$inc": bson.M{
				"points_balance": points,
				"total_earned":   points,
			},
			"$set":         bson.M{"last_activity": time.Now()},
			"$setOnInsert": bson.M{"tier": model.TierBronze},
		},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetUpsert(true),
	).Decode(&account)
	if err != nil {
		return nil, err
	}

	tier := model.TierFor(account.TotalEarned)
	if tier != account.Tier {
		_, err = r.collection.UpdateByID(ctx, email, bson.M{"$set": bson.M{"tier": tier}})
		if err != nil {
			return nil, err
		}
		account.Tier = tier
	}

	return &account, nil
}

func (r *mongodbLoyaltyRepository) Get(ctx context.Context, email string) (*model.LoyaltyAccount, error) {
	var account model.LoyaltyAccount
	err := r.collection.FindOne(ctx, bson.M{"_id": email}).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}
