package repository

import (
	"context"

	"tour-platform/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	// Create inserts a new booking
	Create(ctx context.Context, booking *model.Booking) error

	// GetByID retrieves a booking by its ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error)

	// GetByReference retrieves a booking by its public reference
	GetByReference(ctx context.Context, reference string) (*model.Booking, error)

	// List returns all bookings, newest first
	List(ctx context.Context) ([]*model.Booking, error)

	// UpdateStatus transitions a booking's status
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}
