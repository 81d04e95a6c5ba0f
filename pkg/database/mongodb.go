package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB wraps the MongoDB client and database
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect establishes a connection to MongoDB
func Connect(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	clientOptions := options.Client().ApplyURI(uri)

	// Set connection timeout
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(dbName)

	mongoDB := &MongoDB{
		Client:   client,
		Database: db,
	}

	// Create indexes
	if err := mongoDB.CreateIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return mongoDB, nil
}

// CreateIndexes creates all necessary indexes for the application
func (m *MongoDB) CreateIndexes(ctx context.Context) error {
	// Unique index on coupons.code; codes are stored uppercase so the
	// unique constraint is effectively case-insensitive
	coupons := m.Database.Collection("coupons")
	couponCodeIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("coupon_code_unique"),
	}
	if _, err := coupons.Indexes().CreateOne(ctx, couponCodeIndex); err != nil {
		return fmt.Errorf("failed to create coupon code index: %w", err)
	}

	// Unique index on bookings.reference
	bookings := m.Database.Collection("bookings")
	bookingRefIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "reference", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("booking_reference_unique"),
	}
	if _, err := bookings.Indexes().CreateOne(ctx, bookingRefIndex); err != nil {
		return fmt.Errorf("failed to create booking reference index: %w", err)
	}

	// Index on bookings.tour_id for admin listings
	bookingTourIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "tour_id", Value: 1}},
		Options: options.Index().SetName("booking_tour_index"),
	}
	if _, err := bookings.Indexes().CreateOne(ctx, bookingTourIndex); err != nil {
		return fmt.Errorf("failed to create booking tour index: %w", err)
	}

	// Unique index on tours.slug
	tours := m.Database.Collection("tours")
	tourSlugIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("tour_slug_unique"),
	}
	if _, err := tours.Indexes().CreateOne(ctx, tourSlugIndex); err != nil {
		return fmt.Errorf("failed to create tour slug index: %w", err)
	}

	// Campaign window scan index
	campaigns := m.Database.Collection("campaigns")
	campaignWindowIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "active", Value: 1},
			{Key: "start_date", Value: 1},
			{Key: "end_date", Value: 1},
		},
		Options: options.Index().SetName("campaign_window_index"),
	}
	if _, err := campaigns.Indexes().CreateOne(ctx, campaignWindowIndex); err != nil {
		return fmt.Errorf("failed to create campaign window index: %w", err)
	}

	// Unique index on admin_users.email
	admins := m.Database.Collection("admin_users")
	adminEmailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("admin_email_unique"),
	}
	if _, err := admins.Indexes().CreateOne(ctx, adminEmailIndex); err != nil {
		return fmt.Errorf("failed to create admin email index: %w", err)
	}

	// Audit log listing index, newest first
	audits := m.Database.Collection("audit_logs")
	auditCreatedIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("audit_created_index"),
	}
	if _, err := audits.Indexes().CreateOne(ctx, auditCreatedIndex); err != nil {
		return fmt.Errorf("failed to create audit created index: %w", err)
	}

	return nil
}

// Disconnect closes the MongoDB connection
func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
